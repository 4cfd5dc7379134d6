package composer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"listora_admin/internal/catalog"
)

// ListingRecord pazaryeri API'sinden gelen mevcut ilan kaydıdır.
// Yapılandırılmış alt veriler API tarafından JSON-encoded string olarak
// taşınır ve hydrate sırasında çözülür.
type ListingRecord struct {
	ID       string `json:"id"`
	Kind     string `json:"kind"`
	Category string `json:"category"`
	Need     string `json:"need"`
	SubType  string `json:"sub_type"`

	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	GeneralInfo string `json:"general_info"`

	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	Size          float64 `json:"size"`
	SizeUnit      string  `json:"size_unit"`
	Bedrooms      int     `json:"bedrooms"`
	Bathrooms     int     `json:"bathrooms"`
	ParkingSpaces int     `json:"parking_spaces"`

	// JSON-encoded alt yapılar
	Location       string `json:"location"`
	Amenities      string `json:"amenities"`
	LocalAmenities string `json:"local_amenities"`
	FAQs           string `json:"faqs"`
	PaymentOptions string `json:"payment_options"`

	FrontImage string   `json:"front_image"`
	Photos     []string `json:"photos"`
	FloorPlans []string `json:"floor_plans"`
	Video      string   `json:"video"`

	Status   string `json:"status"`
	Featured bool   `json:"featured"`

	Ownership        string `json:"ownership"`
	Risks            string `json:"risks"`
	Tenures          string `json:"tenures"`
	Registrations    string `json:"registrations"`
	CommissionOffice string `json:"commission_office"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HydrateDraft mevcut kaydı varsayılanların üzerine bindirerek edit modu
// taslağı kurar. Kayıttaki değerler kazanır, eksik alanlar varsayılanda kalır.
// Bozuk JSON alt yapılar hydrate'i düşürmez, o alan varsayılana döner.
func HydrateDraft(rec ListingRecord) *ListingDraft {
	kind := catalog.ListingKind(rec.Kind)
	if kind == "" {
		kind = catalog.KindProperty
	}
	category := catalog.Category(rec.Category)
	if !catalog.ValidCategory(category) {
		category = catalog.CategoryResidential
	}

	d := NewDraft(kind, category)
	d.ID = rec.ID

	if rec.Need != "" {
		d.Need = catalog.Need(rec.Need)
	}
	d.SubType = rec.SubType
	d.Title = rec.Title
	d.Subtitle = rec.Subtitle
	d.GeneralInfo = rec.GeneralInfo
	d.Price = rec.Price
	if rec.Currency != "" {
		d.Currency = catalog.Currency(rec.Currency)
	}
	d.Size = rec.Size
	if rec.SizeUnit != "" {
		d.SizeUnit = catalog.SizeUnit(rec.SizeUnit)
	}
	d.Bedrooms = rec.Bedrooms
	d.Bathrooms = rec.Bathrooms
	d.ParkingSpaces = rec.ParkingSpaces

	d.Location = decodeLocation(rec.Location)
	d.Amenities = decodeAmenities(rec.Amenities, category)
	d.LocalAmenities = decodeLocalAmenities(rec.LocalAmenities)
	d.FAQs = decodeFAQs(rec.FAQs)
	d.PaymentOptions = decodePaymentOptions(rec.PaymentOptions)

	if rec.FrontImage != "" {
		d.FrontImage = remoteRef(rec.FrontImage)
	}
	for _, url := range rec.Photos {
		d.Photos = append(d.Photos, *remoteRef(url))
	}
	for _, url := range rec.FloorPlans {
		d.FloorPlans = append(d.FloorPlans, *remoteRef(url))
	}
	if rec.Video != "" {
		d.Video = remoteRef(rec.Video)
	}

	if catalog.ValidStatus(catalog.Status(rec.Status)) {
		d.Status = catalog.Status(rec.Status)
	}
	d.Featured = rec.Featured
	d.Ownership = rec.Ownership
	d.Risks = rec.Risks
	d.Tenures = rec.Tenures
	d.Registrations = rec.Registrations
	d.CommissionOffice = rec.CommissionOffice

	if !rec.CreatedAt.IsZero() {
		d.CreatedAt = rec.CreatedAt
	}
	if !rec.UpdatedAt.IsZero() {
		d.UpdatedAt = rec.UpdatedAt
	}
	return d
}

func remoteRef(url string) *MediaRef {
	return &MediaRef{ID: uuid.NewString(), URL: url}
}

func decodeLocation(s string) Location {
	if s == "" {
		return Location{}
	}
	var loc Location
	if err := json.Unmarshal([]byte(s), &loc); err != nil {
		return Location{}
	}
	return loc
}

// decodeAmenities kayıttaki seçimleri katalog listesinin üzerine bindirir.
// Kayıtta olup katalogda olmayan kayıtlar custom olarak taşınır.
func decodeAmenities(s string, category catalog.Category) []Amenity {
	base := amenitiesForCategory(category, nil)
	if s == "" {
		return base
	}
	var saved []Amenity
	if err := json.Unmarshal([]byte(s), &saved); err != nil {
		return base
	}

	known := make(map[string]int, len(base))
	for i, a := range base {
		known[a.ID] = i
	}
	for _, a := range saved {
		if i, ok := known[a.ID]; ok {
			base[i].Selected = true
			continue
		}
		a.Selected = true
		a.Custom = true
		if a.ID == "" {
			a.ID = uuid.NewString()
		}
		base = append(base, a)
	}
	return base
}

func decodeLocalAmenities(s string) []LocalAmenity {
	if s == "" {
		return []LocalAmenity{}
	}
	var list []LocalAmenity
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return []LocalAmenity{}
	}
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.NewString()
		}
	}
	return list
}

func decodeFAQs(s string) []FAQ {
	if s == "" {
		return []FAQ{}
	}
	var list []FAQ
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return []FAQ{}
	}
	for i := range list {
		if list[i].ID == "" {
			list[i].ID = uuid.NewString()
		}
	}
	return list
}

func decodePaymentOptions(s string) []catalog.PaymentOption {
	if s == "" {
		return []catalog.PaymentOption{}
	}
	var list []catalog.PaymentOption
	if err := json.Unmarshal([]byte(s), &list); err != nil {
		return []catalog.PaymentOption{}
	}
	return list
}
