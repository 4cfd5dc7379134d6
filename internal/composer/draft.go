package composer

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"listora_admin/internal/catalog"
)

var (
	ErrEntryNotFound   = errors.New("entry not found")
	ErrNotCustom       = errors.New("only custom amenities can be removed")
	ErrUnknownCategory = errors.New("unknown category")
)

// Location ilanın yapılandırılmış adres bilgisidir
type Location struct {
	Country        string `json:"country"`
	Street         string `json:"street"`
	City           string `json:"city"`
	Region         string `json:"region"`
	Postcode       string `json:"postcode"`
	DigitalAddress string `json:"digital_address"`
}

// Amenity taslaktaki bir olanak kaydıdır. Custom olanlar kullanıcı tanımlıdır
// ve kategori değişiminde korunur.
type Amenity struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Selected bool   `json:"selected"`
	Custom   bool   `json:"custom"`
}

// LocalAmenity yakın çevre olanağıdır (okul, hastane vb.)
type LocalAmenity struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MinutesDrive int    `json:"minutes_drive"`
}

type FAQ struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// MediaRef taslaktaki bir medya referansıdır. Key staging alanındaki yeni
// yüklenen dosyayı, URL ise mevcut ilandan gelen uzak dosyayı gösterir.
type MediaRef struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Key         string `json:"key,omitempty"`
	URL         string `json:"url,omitempty"`
	Size        int64  `json:"size"`
}

// ListingDraft oluşturulmakta olan ilanın tek doğruluk kaynağıdır.
// Sihirbaz kapanana kadar sadece bellekte yaşar.
type ListingDraft struct {
	ID   string              `json:"id,omitempty"` // boş ise create modu
	Kind catalog.ListingKind `json:"kind"`

	Category catalog.Category `json:"category"`
	Need     catalog.Need     `json:"need"`
	SubType  string           `json:"sub_type"`

	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	GeneralInfo string `json:"general_info"`

	Price         float64          `json:"price"`
	Currency      catalog.Currency `json:"currency"`
	Size          float64          `json:"size"`
	SizeUnit      catalog.SizeUnit `json:"size_unit"`
	Bedrooms      int              `json:"bedrooms"`
	Bathrooms     int              `json:"bathrooms"`
	ParkingSpaces int              `json:"parking_spaces"`

	Location Location `json:"location"`

	FrontImage *MediaRef  `json:"front_image,omitempty"`
	Photos     []MediaRef `json:"photos"`
	FloorPlans []MediaRef `json:"floor_plans"`
	Video      *MediaRef  `json:"video,omitempty"`

	Amenities      []Amenity               `json:"amenities"`
	LocalAmenities []LocalAmenity          `json:"local_amenities"`
	FAQs           []FAQ                   `json:"faqs"`
	PaymentOptions []catalog.PaymentOption `json:"payment_options"`

	Status   catalog.Status `json:"status"`
	Featured bool           `json:"featured"`

	// Kategoriye özgü opsiyonel alanlar
	Ownership        string `json:"ownership,omitempty"`
	Risks            string `json:"risks,omitempty"`
	Tenures          string `json:"tenures,omitempty"`
	Registrations    string `json:"registrations,omitempty"`
	CommissionOffice string `json:"commission_office,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDraft kategoriye uygun varsayılanlarla dolu bir taslak oluşturur.
// Dönen taslağın her alanı tanımlı bir değere sahiptir.
func NewDraft(kind catalog.ListingKind, category catalog.Category) *ListingDraft {
	now := time.Now().UTC()
	return &ListingDraft{
		Kind:           kind,
		Category:       category,
		Need:           catalog.DefaultNeed(category),
		Currency:       catalog.CurrencyUSD,
		SizeUnit:       catalog.SizeUnitSqm,
		Location:       Location{},
		Photos:         []MediaRef{},
		FloorPlans:     []MediaRef{},
		Amenities:      amenitiesForCategory(category, nil),
		LocalAmenities: []LocalAmenity{},
		FAQs:           []FAQ{},
		PaymentOptions: []catalog.PaymentOption{},
		Status:         catalog.StatusUnpublished,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// amenitiesForCategory genel ∪ kategoriye özgü olanak listesini kurar.
// prev verilirse aynı ID'li olanakların seçimleri ve custom kayıtlar korunur.
func amenitiesForCategory(category catalog.Category, prev []Amenity) []Amenity {
	selected := make(map[string]bool, len(prev))
	for _, a := range prev {
		if a.Selected {
			selected[a.ID] = true
		}
	}

	var out []Amenity
	for _, def := range catalog.GeneralAmenities() {
		out = append(out, Amenity{ID: def.ID, Name: def.Name, Icon: def.Icon, Selected: selected[def.ID]})
	}
	for _, def := range catalog.CategoryAmenities(category) {
		if containsAmenity(out, def.ID) {
			continue
		}
		out = append(out, Amenity{ID: def.ID, Name: def.Name, Icon: def.Icon, Selected: selected[def.ID]})
	}
	// Custom olanaklar kategoriden bağımsız her zaman görünür
	for _, a := range prev {
		if a.Custom {
			out = append(out, a)
		}
	}
	return out
}

func containsAmenity(list []Amenity, id string) bool {
	for _, a := range list {
		if a.ID == id {
			return true
		}
	}
	return false
}

// DraftUpdate bir merge çağrısının kısmi güncellemesidir. Nil alanlar
// dokunulmadan bırakılır. Location tam alt kayıt olarak verilmelidir,
// store iç içe merge yapmaz.
type DraftUpdate struct {
	Category *catalog.Category `json:"category"`
	Need     *catalog.Need     `json:"need"`
	SubType  *string           `json:"sub_type"`

	Title       *string `json:"title"`
	Subtitle    *string `json:"subtitle"`
	GeneralInfo *string `json:"general_info"`

	Price         *float64          `json:"price"`
	Currency      *catalog.Currency `json:"currency"`
	Size          *float64          `json:"size"`
	SizeUnit      *catalog.SizeUnit `json:"size_unit"`
	Bedrooms      *int              `json:"bedrooms"`
	Bathrooms     *int              `json:"bathrooms"`
	ParkingSpaces *int              `json:"parking_spaces"`

	Location *Location `json:"location"`

	PaymentOptions *[]catalog.PaymentOption `json:"payment_options"`

	Featured *bool `json:"featured"`

	Ownership        *string `json:"ownership"`
	Risks            *string `json:"risks"`
	Tenures          *string `json:"tenures"`
	Registrations    *string `json:"registrations"`
	CommissionOffice *string `json:"commission_office"`
}

// Merge kısmi güncellemeyi sığ olarak uygular (last-write-wins).
// Kategori değişimi need'i yeni kategorinin varsayılanına çeker,
// alt tipi temizler ve olanak listesini yeniden kurar.
func (d *ListingDraft) Merge(u DraftUpdate) error {
	if u.Category != nil && *u.Category != d.Category {
		if !catalog.ValidCategory(*u.Category) {
			return ErrUnknownCategory
		}
		d.Category = *u.Category
		d.Need = catalog.DefaultNeed(d.Category)
		d.SubType = ""
		d.Amenities = amenitiesForCategory(d.Category, d.Amenities)
		d.PaymentOptions = []catalog.PaymentOption{}
	}
	if u.Need != nil {
		d.Need = *u.Need
	}
	if u.SubType != nil {
		d.SubType = *u.SubType
	}
	if u.Title != nil {
		d.Title = *u.Title
	}
	if u.Subtitle != nil {
		d.Subtitle = *u.Subtitle
	}
	if u.GeneralInfo != nil {
		d.GeneralInfo = *u.GeneralInfo
	}
	if u.Price != nil {
		d.Price = *u.Price
	}
	if u.Currency != nil {
		d.Currency = *u.Currency
	}
	if u.Size != nil {
		d.Size = *u.Size
	}
	if u.SizeUnit != nil {
		d.SizeUnit = *u.SizeUnit
	}
	if u.Bedrooms != nil {
		d.Bedrooms = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		d.Bathrooms = *u.Bathrooms
	}
	if u.ParkingSpaces != nil {
		d.ParkingSpaces = *u.ParkingSpaces
	}
	if u.Location != nil {
		d.Location = *u.Location
	}
	if u.PaymentOptions != nil {
		d.PaymentOptions = *u.PaymentOptions
	}
	if u.Featured != nil {
		d.Featured = *u.Featured
	}
	if u.Ownership != nil {
		d.Ownership = *u.Ownership
	}
	if u.Risks != nil {
		d.Risks = *u.Risks
	}
	if u.Tenures != nil {
		d.Tenures = *u.Tenures
	}
	if u.Registrations != nil {
		d.Registrations = *u.Registrations
	}
	if u.CommissionOffice != nil {
		d.CommissionOffice = *u.CommissionOffice
	}
	d.UpdatedAt = time.Now().UTC()
	return nil
}

// AddFAQ yeni bir SSS kaydı ekler ve ID'sini döner
func (d *ListingDraft) AddFAQ(question, answer string) FAQ {
	faq := FAQ{ID: uuid.NewString(), Question: question, Answer: answer}
	d.FAQs = append(d.FAQs, faq)
	d.touch()
	return faq
}

// UpdateFAQ ID ile eşleşen kaydı sırasını bozmadan günceller
func (d *ListingDraft) UpdateFAQ(id, question, answer string) error {
	for i := range d.FAQs {
		if d.FAQs[i].ID == id {
			d.FAQs[i].Question = question
			d.FAQs[i].Answer = answer
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// RemoveFAQ ID ile eşleşen kaydı siler, kardeş kayıtların sırası korunur
func (d *ListingDraft) RemoveFAQ(id string) error {
	for i := range d.FAQs {
		if d.FAQs[i].ID == id {
			d.FAQs = append(d.FAQs[:i], d.FAQs[i+1:]...)
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddLocalAmenity yeni bir yakın çevre olanağı ekler
func (d *ListingDraft) AddLocalAmenity(name string, minutesDrive int) LocalAmenity {
	la := LocalAmenity{ID: uuid.NewString(), Name: name, MinutesDrive: minutesDrive}
	d.LocalAmenities = append(d.LocalAmenities, la)
	d.touch()
	return la
}

// UpdateLocalAmenity ID ile eşleşen kaydı günceller
func (d *ListingDraft) UpdateLocalAmenity(id, name string, minutesDrive int) error {
	for i := range d.LocalAmenities {
		if d.LocalAmenities[i].ID == id {
			d.LocalAmenities[i].Name = name
			d.LocalAmenities[i].MinutesDrive = minutesDrive
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// RemoveLocalAmenity ID ile eşleşen kaydı siler
func (d *ListingDraft) RemoveLocalAmenity(id string) error {
	for i := range d.LocalAmenities {
		if d.LocalAmenities[i].ID == id {
			d.LocalAmenities = append(d.LocalAmenities[:i], d.LocalAmenities[i+1:]...)
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddCustomAmenity kullanıcı tanımlı bir olanak ekler, seçili başlar
func (d *ListingDraft) AddCustomAmenity(name, icon string) Amenity {
	a := Amenity{ID: uuid.NewString(), Name: name, Icon: icon, Selected: true, Custom: true}
	d.Amenities = append(d.Amenities, a)
	d.touch()
	return a
}

// RemoveCustomAmenity kullanıcı tanımlı bir olanağı siler.
// Katalogdan gelen sabit olanaklar silinemez.
func (d *ListingDraft) RemoveCustomAmenity(id string) error {
	for i := range d.Amenities {
		if d.Amenities[i].ID == id {
			if !d.Amenities[i].Custom {
				return ErrNotCustom
			}
			d.Amenities = append(d.Amenities[:i], d.Amenities[i+1:]...)
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// SetAmenitySelected olanağın seçim durumunu değiştirir
func (d *ListingDraft) SetAmenitySelected(id string, selected bool) error {
	for i := range d.Amenities {
		if d.Amenities[i].ID == id {
			d.Amenities[i].Selected = selected
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// SetFrontImage kapak görselini değiştirir
func (d *ListingDraft) SetFrontImage(ref *MediaRef) {
	d.FrontImage = ref
	d.touch()
}

// AddPhoto fotoğrafı listenin sonuna ekler
func (d *ListingDraft) AddPhoto(ref MediaRef) {
	d.Photos = append(d.Photos, ref)
	d.touch()
}

// RemovePhoto ID ile eşleşen fotoğrafı siler, sıra korunur
func (d *ListingDraft) RemovePhoto(id string) error {
	for i := range d.Photos {
		if d.Photos[i].ID == id {
			d.Photos = append(d.Photos[:i], d.Photos[i+1:]...)
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// AddFloorPlan kat planını listenin sonuna ekler
func (d *ListingDraft) AddFloorPlan(ref MediaRef) {
	d.FloorPlans = append(d.FloorPlans, ref)
	d.touch()
}

// RemoveFloorPlan ID ile eşleşen kat planını siler
func (d *ListingDraft) RemoveFloorPlan(id string) error {
	for i := range d.FloorPlans {
		if d.FloorPlans[i].ID == id {
			d.FloorPlans = append(d.FloorPlans[:i], d.FloorPlans[i+1:]...)
			d.touch()
			return nil
		}
	}
	return ErrEntryNotFound
}

// SetVideo video referansını değiştirir, nil ile temizlenir
func (d *ListingDraft) SetVideo(ref *MediaRef) {
	d.Video = ref
	d.touch()
}

// MediaKeys taslağın staging alanında tuttuğu tüm anahtarları döner
func (d *ListingDraft) MediaKeys() []string {
	var keys []string
	appendKey := func(ref *MediaRef) {
		if ref != nil && ref.Key != "" {
			keys = append(keys, ref.Key)
		}
	}
	appendKey(d.FrontImage)
	appendKey(d.Video)
	for i := range d.Photos {
		appendKey(&d.Photos[i])
	}
	for i := range d.FloorPlans {
		appendKey(&d.FloorPlans[i])
	}
	return keys
}

func (d *ListingDraft) touch() {
	d.UpdatedAt = time.Now().UTC()
}
