package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// itemRecord is the YAML/JSON wire form of an Item.
type itemRecord struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Category string   `yaml:"category"`
	Price    int      `yaml:"price"`
	Tags     []string `yaml:"tags"`
}

type datasetFile struct {
	Items []itemRecord `yaml:"items"`
}

// LoadDataset reads a YAML dataset file and returns its items in file order.
func LoadDataset(path string) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	var file datasetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(file.Items) == 0 {
		return nil, fmt.Errorf("dataset %s contains no items", path)
	}

	items := make([]Item, len(file.Items))
	for i, r := range file.Items {
		items[i] = NewItem(r.ID, r.Name, r.Category, r.Price, r.Tags)
	}
	return items, nil
}

// DefaultItems returns the built-in product dataset.
func DefaultItems() []Item {
	return []Item{
		NewItem("p1", "Lenovo Ideapad 3", "laptop", 52000, []string{"coding", "budget", "student"}),
		NewItem("p2", "MacBook Air M1", "laptop", 84990, []string{"coding", "battery", "portable"}),
		NewItem("p3", "Dell XPS 15", "laptop", 150000, []string{"power-user", "coding", "design", "high-performance"}),
		NewItem("p4", "HP Spectre x360", "laptop", 135000, []string{"2-in-1", "touchscreen", "creative"}),
		NewItem("p5", "Acer Aspire 5", "laptop", 45000, []string{"budget", "everyday-use", "multimedia"}),
		NewItem("p6", "Razer Blade 15", "laptop", 180000, []string{"gaming", "high-refresh", "powerful"}),
		NewItem("p7", "Microsoft Surface Laptop 4", "laptop", 110000, []string{"sleek", "portable", "professional"}),

		NewItem("a1", "Logitech MX Master 3S", "accessory", 8990, []string{"productivity", "ergonomic", "mouse"}),
		NewItem("a2", "Keychron K2", "accessory", 7500, []string{"mechanical-keyboard", "productivity", "wireless"}),
		NewItem("a3", "Anker PowerCore III", "accessory", 4500, []string{"portable", "charging", "power-bank"}),
		NewItem("a4", "Samsung T7 SSD 1TB", "accessory", 10500, []string{"storage", "external-drive", "fast"}),
		NewItem("a5", "Logitech C920 Webcam", "accessory", 6000, []string{"webcam", "video-conferencing", "hd"}),
		NewItem("a6", "Corsair K70 RGB Pro", "accessory", 12500, []string{"mechanical-keyboard", "gaming", "rgb"}),
		NewItem("a7", "Dual Monitor Stand", "accessory", 5500, []string{"desk-setup", "ergonomic", "stand"}),

		NewItem("au1", "Sony WH-1000XM5", "audio", 29990, []string{"noise-cancelling", "travel", "headphones"}),
		NewItem("au2", "Bose QuietComfort Earbuds II", "audio", 25900, []string{"earbuds", "noise-cancelling", "wireless"}),
		NewItem("au3", "JBL Flip 6", "audio", 9000, []string{"speaker", "portable", "waterproof"}),
		NewItem("au4", "Apple AirPods Pro 2", "audio", 24900, []string{"earbuds", "apple-ecosystem", "wireless"}),
		NewItem("au5", "Sennheiser HD 660S2", "audio", 40000, []string{"audiophile", "open-back", "headphones"}),
		NewItem("au6", "HyperX QuadCast S", "audio", 15000, []string{"microphone", "streaming", "podcast"}),
		NewItem("au7", "Marshall Stanmore II", "audio", 28000, []string{"speaker", "bluetooth", "retro"}),
	}
}

// LoadTable builds the catalog table, from the YAML dataset at path when
// non-empty, otherwise from the built-in data.
func LoadTable(path string) (*Table, error) {
	items := DefaultItems()
	if path != "" {
		loaded, err := LoadDataset(path)
		if err != nil {
			return nil, err
		}
		items = loaded
	}
	return NewTable(items)
}
