package services

import (
	"log"

	"github.com/farhatamiine/restaurent-menu/cache"
	"github.com/farhatamiine/restaurent-menu/entity"
	"github.com/farhatamiine/restaurent-menu/events"
	"github.com/farhatamiine/restaurent-menu/pkg/apperr"
	"github.com/farhatamiine/restaurent-menu/repository"
)

type demoItem struct {
	Name        string
	Description string
	Price       float64
	Icon        string
}

type demoCategory struct {
	Name  string
	Icon  string
	Items []demoItem
}

var demoCategories = []demoCategory{
	{
		Name: "Starters",
		Icon: "Salad",
		Items: []demoItem{
			{"Caesar Salad", "Romaine lettuce, croutons, parmesan cheese, and caesar dressing.", 12.5, "Salad"},
			{"Truffle Fries", "Crispy fries with truffle oil and parmesan.", 9.0, "Pizza"},
			{"Tomato Soup", "Creamy tomato soup with basil.", 8.5, "Soup"},
		},
	},
	{
		Name: "Mains",
		Icon: "Utensils",
		Items: []demoItem{
			{"Grilled Salmon", "Fresh atlantic salmon with roasted vegetables.", 24.0, "Fish"},
			{"Cheeseburger", "Angus beef patty, cheddar, lettuce, tomato, house sauce.", 16.5, "Sandwich"},
			{"Margherita Pizza", "Tomato sauce, mozzarella, and fresh basil.", 15.0, "Pizza"},
			{"Steak Frites", "Ribeye steak with herb butter and fries.", 29.0, "Beef"},
		},
	},
	{
		Name: "Desserts",
		Icon: "Croissant",
		Items: []demoItem{
			{"Chocolate Cake", "Rich chocolate layer cake.", 9.0, "Cake"},
			{"Ice Cream", "Three scoops of vanilla bean ice cream.", 6.5, "IceCream"},
			{"Tiramisu", "Classic italian coffee-flavored dessert.", 10.0, "Coffee"},
		},
	},
	{
		Name: "Beverages",
		Icon: "Coffee",
		Items: []demoItem{
			{"Espresso", "Double shot of espresso.", 3.5, "Coffee"},
			{"Fresh Lemonade", "House-made sparkling lemonade.", 5.0, "GlassWater"},
			{"Craft Beer", "Local IPA on tap.", 7.0, "Beer"},
			{"Red Wine", "Glass of Cabernet Sauvignon.", 11.0, "Wine"},
		},
	},
}

// SeedService fills a shop with a demo menu, appended after whatever the shop
// already has.
type SeedService struct {
	Shops      *repository.ShopRepository
	Categories *repository.CategoryRepository
	Items      *repository.ItemRepository
	Cache      *cache.MenuCache
	Feed       events.Sink
}

func NewSeedService(shops *repository.ShopRepository, categories *repository.CategoryRepository, items *repository.ItemRepository, menuCache *cache.MenuCache, feed events.Sink) *SeedService {
	return &SeedService{Shops: shops, Categories: categories, Items: items, Cache: menuCache, Feed: feed}
}

func (s *SeedService) SeedDemoMenu(ownerID, shopID uint) error {
	shop, err := s.Shops.FindOwned(shopID, ownerID)
	if err != nil {
		return apperr.ErrNotFound
	}

	order, err := s.Categories.NextOrderIndex(shop.ID)
	if err != nil {
		return err
	}

	for _, dc := range demoCategories {
		cat := &entity.Category{
			Name:       dc.Name,
			Icon:       dc.Icon,
			OrderIndex: order,
			ShopID:     shop.ID,
		}
		if err := s.Categories.Create(cat); err != nil {
			log.Printf("seed: create category %q: %v", dc.Name, err)
			continue
		}
		order++

		for idx, di := range dc.Items {
			item := &entity.MenuItem{
				Name:        di.Name,
				Description: di.Description,
				Price:       di.Price,
				Icon:        di.Icon,
				IsAvailable: true,
				OrderIndex:  idx,
				CategoryID:  cat.ID,
			}
			if err := s.Items.Create(item); err != nil {
				log.Printf("seed: create item %q: %v", di.Name, err)
				continue
			}
			s.Feed.Publish(events.ItemCreated(item))
		}
	}

	s.Cache.Invalidate(shop.ID)
	return nil
}
