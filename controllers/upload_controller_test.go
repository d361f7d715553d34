package controllers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/owner/uploads", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func uploadRouter(dir, baseURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/owner/uploads", NewUploadController(dir, baseURL).UploadImage)
	return r
}

func TestUploadReturnsAbsoluteURLWithBase(t *testing.T) {
	r := uploadRouter(t.TempDir(), "https://cdn.example.com/")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "dish.png", []byte("img")))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, strings.HasPrefix(body.Data.URL, "https://cdn.example.com/uploads/"))
}

func TestUploadReturnsRelativeURLWithoutBase(t *testing.T) {
	r := uploadRouter(t.TempDir(), "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "dish.jpg", []byte("img")))
	require.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.True(t, strings.HasPrefix(body.Data.URL, "/uploads/"))
}

func TestUploadMissingFileIsBadRequest(t *testing.T) {
	r := uploadRouter(t.TempDir(), "")

	req := httptest.NewRequest(http.MethodPost, "/owner/uploads", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body.Error, "upload failed")
}

func TestUploadRejectsBadExtension(t *testing.T) {
	r := uploadRouter(t.TempDir(), "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, uploadRequest(t, "script.sh", []byte("#!/bin/sh")))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
