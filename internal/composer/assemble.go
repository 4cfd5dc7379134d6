package composer

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/gosimple/slug"

	"listora_admin/internal/catalog"
)

// Field düz transport payload'undaki tek bir isim/değer çiftidir
type Field struct {
	Name  string
	Value string
}

// FilePart staging alanından stream edilecek bir dosya girdisidir.
// Aynı alan adı altında tekrarlanan girdiler taslak sırasını korur.
type FilePart struct {
	Field       string
	FileName    string
	ContentType string
	Key         string
}

// Payload Submission Gateway'e giden düz multipart payload'dur.
// Alan sırası sabittir: aynı taslak anlık görüntüsü için Assemble
// bayt bayt aynı çıktıyı üretir.
type Payload struct {
	ListingID string // boş ise create modu
	Fields    []Field
	Files     []FilePart
}

// IsUpdate payload'un mevcut bir ilanı güncelleyip güncellemediğini döner
func (p *Payload) IsUpdate() bool {
	return p.ListingID != ""
}

// Assemble taslağı transport payload'una dönüştürür. Saf fonksiyondur,
// taslağı değiştirmez. Kategoriye/need'e yabancı alanlar boş gönderilmek
// yerine tamamen atlanır.
func Assemble(d *ListingDraft) (*Payload, error) {
	p := &Payload{ListingID: d.ID}

	if d.ID != "" {
		p.add("id", d.ID)
	}
	p.add("kind", string(d.Kind))
	p.add("category", string(d.Category))
	p.add("need", string(d.Need))
	if d.SubType != "" {
		p.add("sub_type", d.SubType)
	}

	p.add("title", d.Title)
	if d.Title != "" {
		p.add("slug", slug.Make(d.Title))
	}
	if d.Subtitle != "" {
		p.add("subtitle", d.Subtitle)
	}
	if d.GeneralInfo != "" {
		p.add("general_info", d.GeneralInfo)
	}

	p.add("price", strconv.FormatFloat(d.Price, 'f', -1, 64))
	p.add("currency", string(d.Currency))
	p.add("size", strconv.FormatFloat(d.Size, 'f', -1, 64))
	p.add("size_unit", string(d.SizeUnit))

	// Oda alanları sadece destekleyen kategorilere gider
	if catalog.SupportsRooms(d.Category) {
		p.add("bedrooms", strconv.Itoa(d.Bedrooms))
		p.add("bathrooms", strconv.Itoa(d.Bathrooms))
		p.add("parking_spaces", strconv.Itoa(d.ParkingSpaces))
	}

	if err := p.addJSON("location", d.Location); err != nil {
		return nil, err
	}
	if err := p.addJSON("amenities", selectedAmenities(d.Amenities)); err != nil {
		return nil, err
	}
	if err := p.addJSON("local_amenities", d.LocalAmenities); err != nil {
		return nil, err
	}
	if err := p.addJSON("faqs", d.FAQs); err != nil {
		return nil, err
	}

	// Ödeme seçenekleri sadece Buy/Rent için anlamlıdır, diğerlerinde atlanır
	if (d.Need == catalog.NeedBuy || d.Need == catalog.NeedRent) && len(d.PaymentOptions) > 0 {
		if err := p.addJSON("payment_options", d.PaymentOptions); err != nil {
			return nil, err
		}
	}

	p.add("status", string(d.Status))
	p.add("featured", strconv.FormatBool(d.Featured))

	if d.Ownership != "" {
		p.add("ownership", d.Ownership)
	}
	if d.Risks != "" {
		p.add("risks", d.Risks)
	}
	if d.Tenures != "" {
		p.add("tenures", d.Tenures)
	}
	if d.Registrations != "" {
		p.add("registrations", d.Registrations)
	}
	if d.CommissionOffice != "" {
		p.add("commission_office", d.CommissionOffice)
	}

	// Medya: staging'deki dosyalar binary girdi olur, edit modundan gelen
	// uzak URL'ler değer olarak taşınır. Silinen medya bir sonraki
	// assemble'da payload'dan kaybolur.
	p.addMedia("front_image", d.FrontImage)
	for i := range d.Photos {
		p.addMedia("photos", &d.Photos[i])
	}
	for i := range d.FloorPlans {
		p.addMedia("floor_plans", &d.FloorPlans[i])
	}
	p.addMedia("video", d.Video)

	return p, nil
}

// selectedAmenities sadece seçili olanakları taslak sırasıyla döner
func selectedAmenities(list []Amenity) []catalog.AmenityDef {
	out := []catalog.AmenityDef{}
	for _, a := range list {
		if a.Selected {
			out = append(out, catalog.AmenityDef{ID: a.ID, Name: a.Name, Icon: a.Icon})
		}
	}
	return out
}

func (p *Payload) add(name, value string) {
	p.Fields = append(p.Fields, Field{Name: name, Value: value})
}

func (p *Payload) addJSON(name string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode %s: %w", name, err)
	}
	p.add(name, string(data))
	return nil
}

func (p *Payload) addMedia(field string, ref *MediaRef) {
	if ref == nil {
		return
	}
	if ref.Key != "" {
		p.Files = append(p.Files, FilePart{
			Field:       field,
			FileName:    ref.FileName,
			ContentType: ref.ContentType,
			Key:         ref.Key,
		})
		return
	}
	if ref.URL != "" {
		p.add(field+"_urls", ref.URL)
	}
}
