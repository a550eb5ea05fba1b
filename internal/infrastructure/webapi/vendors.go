package webapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/wedifit/wedifit-services/api/internal/matching/domain"
)

const (
	studiosPath      = "/api/v1/studios"
	dressVendorsPath = "/api/v1/dress-vendors"
	makeupPricesPath = "/api/v1/makeup-prices"

	studioFallbackImage = "https://images.unsplash.com/photo-1519741497674-611481863552?auto=format&fit=crop&w=800&q=80"
	dressFallbackImage  = "https://images.unsplash.com/photo-1594552072238-b8a33785b261?auto=format&fit=crop&w=800&q=80"
	makeupFallbackImage = "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?auto=format&fit=crop&w=800&q=80"

	unknownLocation = "위치 정보 없음"
)

// vendorRecord is the upstream row shape shared by the studio and dress
// vendor listings. Price fields stay raw text; parsing is the domain's job.
type vendorRecord struct {
	ID                string `json:"id"`
	BusinessName      string `json:"business_name"`
	BasePrice         string `json:"base_price"`
	ManagerAssignment string `json:"manager_assignment"`
	Outdoor           string `json:"outdoor"`
	Night             string `json:"night"`
	OtherOptions      string `json:"other_options"`
	Location          string `json:"location"`
	Instagram         string `json:"instagram"`
	PhoneNumber       string `json:"phone_number"`
}

func vendorListURL(baseURL, path string, maxBudget int) string {
	if maxBudget > 0 {
		return fmt.Sprintf("%s%s?max_budget=%d", baseURL, path, maxBudget)
	}
	return baseURL + path
}

func mapVendor(record vendorRecord, category domain.Category, fallbackImage string) domain.Vendor {
	var addOns []domain.AddOnOption
	appendAddOn := func(kind, name, raw string) {
		priceText := domain.FormatOptionPrice(raw)
		if priceText == "" {
			return
		}
		addOns = append(addOns, domain.AddOnOption{
			ID:        fmt.Sprintf("%s_%s", kind, record.ID),
			Name:      name,
			PriceText: priceText,
		})
	}
	appendAddOn("manager", "담당자지정", record.ManagerAssignment)
	appendAddOn("outdoor", "야외", record.Outdoor)
	appendAddOn("night", "야간", record.Night)

	basePrice := record.BasePrice
	if basePrice == "" {
		basePrice = "0"
	}
	location := record.Location
	if location == "" {
		location = unknownLocation
	}

	return domain.Vendor{
		ID:           record.ID,
		Name:         record.BusinessName,
		Category:     category,
		BasePrice:    basePrice,
		Image:        fallbackImage,
		Location:     location,
		AddOns:       addOns,
		OtherOptions: domain.ParseOtherOptions(record.OtherOptions),
		PhoneNumber:  record.PhoneNumber,
		Instagram:    record.Instagram,
	}
}

// StudioSource lists wedding studios from the vendor API.
type StudioSource struct {
	baseURL string
	client  *http.Client
}

func NewStudioSource(baseURL string, client *http.Client) *StudioSource {
	return &StudioSource{baseURL: baseURL, client: httpClient(client)}
}

func (s *StudioSource) Category() domain.Category { return domain.CategoryStudio }

func (s *StudioSource) Fetch(ctx context.Context, maxBudget int) ([]domain.Vendor, error) {
	type envelope struct {
		Studios []vendorRecord `json:"studios"`
	}
	resp, err := request[envelope](ctx, s.client, reqConfig{
		Method: http.MethodGet,
		URL:    vendorListURL(s.baseURL, studiosPath, maxBudget),
	})
	if err != nil {
		return nil, err
	}

	vendors := make([]domain.Vendor, 0, len(resp.Studios))
	for _, record := range resp.Studios {
		vendors = append(vendors, mapVendor(record, domain.CategoryStudio, studioFallbackImage))
	}
	return vendors, nil
}

// DressSource lists dress shops from the vendor API.
type DressSource struct {
	baseURL string
	client  *http.Client
}

func NewDressSource(baseURL string, client *http.Client) *DressSource {
	return &DressSource{baseURL: baseURL, client: httpClient(client)}
}

func (s *DressSource) Category() domain.Category { return domain.CategoryDress }

func (s *DressSource) Fetch(ctx context.Context, maxBudget int) ([]domain.Vendor, error) {
	type envelope struct {
		DressVendors []vendorRecord `json:"dress_vendors"`
	}
	resp, err := request[envelope](ctx, s.client, reqConfig{
		Method: http.MethodGet,
		URL:    vendorListURL(s.baseURL, dressVendorsPath, maxBudget),
	})
	if err != nil {
		return nil, err
	}

	vendors := make([]domain.Vendor, 0, len(resp.DressVendors))
	for _, record := range resp.DressVendors {
		vendors = append(vendors, mapVendor(record, domain.CategoryDress, dressFallbackImage))
	}
	return vendors, nil
}

// makeupPriceRecord is one product row of the makeup price list. One shop
// appears once per product, so listing collapses rows by business name.
type makeupPriceRecord struct {
	ID                 string `json:"id"`
	BusinessName       string `json:"business_name"`
	ProductComposition string `json:"product_composition"`
	BasePrice          string `json:"base_price"`
	DesignatedFee      string `json:"designated_fee"`
	OtherOptions       string `json:"other_options"`
	MinPrice           string `json:"min_price"`
}

// MakeupSource lists makeup shops, collapsing the per-product price rows to
// one vendor per business name with its cheapest price.
type MakeupSource struct {
	baseURL string
	client  *http.Client
}

func NewMakeupSource(baseURL string, client *http.Client) *MakeupSource {
	return &MakeupSource{baseURL: baseURL, client: httpClient(client)}
}

func (s *MakeupSource) Category() domain.Category { return domain.CategoryMakeup }

func (s *MakeupSource) Fetch(ctx context.Context, maxBudget int) ([]domain.Vendor, error) {
	type envelope struct {
		MakeupPrices []makeupPriceRecord `json:"makeup_prices"`
		Makeups      []makeupPriceRecord `json:"makeups"`
	}
	resp, err := request[envelope](ctx, s.client, reqConfig{
		Method: http.MethodGet,
		URL:    vendorListURL(s.baseURL, makeupPricesPath, maxBudget),
	})
	if err != nil {
		return nil, err
	}
	records := resp.MakeupPrices
	if len(records) == 0 {
		records = resp.Makeups
	}

	seen := make(map[string]bool, len(records))
	vendors := make([]domain.Vendor, 0, len(records))
	for _, record := range records {
		if seen[record.BusinessName] {
			continue
		}
		seen[record.BusinessName] = true

		// The price list carries a precomputed minimum per shop; fall back
		// to extracting one from the raw product price text.
		basePrice := record.MinPrice
		if basePrice == "" {
			if min := domain.MinPrice(record.BasePrice); min != domain.PriceUnknown {
				basePrice = strconv.Itoa(min)
			} else {
				basePrice = record.BasePrice
			}
		}
		vendors = append(vendors, domain.Vendor{
			ID:           "makeup-" + record.BusinessName,
			Name:         record.BusinessName,
			Category:     domain.CategoryMakeup,
			BasePrice:    basePrice,
			Image:        makeupFallbackImage,
			Location:     unknownLocation,
			OtherOptions: domain.ParseOtherOptions(record.OtherOptions),
		})
	}
	return vendors, nil
}
