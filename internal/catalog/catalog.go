package catalog

// Listing Kinds
type ListingKind string

const (
	KindProperty ListingKind = "property"
	KindService  ListingKind = "service"
)

// Listing Categories
type Category string

const (
	CategoryResidential Category = "Residential"
	CategoryCommercial  Category = "Commercial"
	CategoryInvestment  Category = "Investment"
	CategoryLand        Category = "Land"
	CategoryFjord       Category = "The Fjord"

	// Servis kategorileri
	CategoryHomeServices         Category = "Home Services"
	CategoryProfessionalServices Category = "Professional Services"
)

// Need / Purpose
type Need string

const (
	NeedStay   Need = "Stay"
	NeedInvest Need = "Invest"
	NeedBuy    Need = "Buy"
	NeedRent   Need = "Rent"
)

// Listing Status
type Status string

const (
	StatusUnpublished Status = "unpublished"
	StatusPublished   Status = "published"
	StatusArchived    Status = "archived"
	StatusClosed      Status = "closed"
)

// Currency Types
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyGHS Currency = "GHS"
	CurrencyNGN Currency = "NGN"
)

// Size Units
type SizeUnit string

const (
	SizeUnitSqm     SizeUnit = "sqm"
	SizeUnitSqft    SizeUnit = "sqft"
	SizeUnitAcre    SizeUnit = "acres"
	SizeUnitHectare SizeUnit = "hectares"
)

// Payment Options
type PaymentOption string

const (
	PaymentOutright    PaymentOption = "Outright"
	PaymentMortgage    PaymentOption = "Mortgage"
	PaymentInstallment PaymentOption = "Installment"
	PaymentMonthly     PaymentOption = "Monthly"
	PaymentQuarterly   PaymentOption = "Quarterly"
	PaymentAnnually    PaymentOption = "Annually"
)

// AmenityDef katalogdaki sabit bir olanak tanımıdır
type AmenityDef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var needsByCategory = map[Category][]Need{
	CategoryResidential:          {NeedBuy, NeedRent},
	CategoryCommercial:           {NeedBuy, NeedRent},
	CategoryInvestment:           {NeedInvest},
	CategoryLand:                 {NeedBuy},
	CategoryFjord:                {NeedStay, NeedInvest},
	CategoryHomeServices:         {NeedBuy, NeedRent},
	CategoryProfessionalServices: {NeedBuy, NeedRent},
}

var subTypesByCategory = map[Category][]string{
	CategoryResidential: {"House", "Apartment", "Townhouse", "Villa", "Penthouse", "Studio"},
	CategoryCommercial:  {"Office", "Retail", "Warehouse", "Hotel", "Mixed Use"},
	CategoryInvestment:  {"Development Project", "Rental Portfolio", "Land Banking"},
	// Land ve The Fjord alt tip gerektirmez
	CategoryLand:  {},
	CategoryFjord: {},

	CategoryHomeServices:         {"Cleaning", "Moving", "Interior Design", "Landscaping", "Security"},
	CategoryProfessionalServices: {"Legal", "Valuation", "Property Management", "Architecture"},
}

var generalAmenities = []AmenityDef{
	{ID: "water", Name: "Water", Icon: "water"},
	{ID: "electricity", Name: "Electricity", Icon: "bolt"},
	{ID: "internet", Name: "Internet", Icon: "wifi"},
	{ID: "security", Name: "24/7 Security", Icon: "shield"},
	{ID: "parking", Name: "Parking", Icon: "car"},
}

var categoryAmenities = map[Category][]AmenityDef{
	CategoryResidential: {
		{ID: "pool", Name: "Swimming Pool", Icon: "pool"},
		{ID: "garden", Name: "Garden", Icon: "tree"},
		{ID: "gym", Name: "Gym", Icon: "dumbbell"},
		{ID: "aircon", Name: "Air Conditioning", Icon: "snowflake"},
		{ID: "furnished", Name: "Furnished", Icon: "couch"},
	},
	CategoryCommercial: {
		{ID: "elevator", Name: "Elevator", Icon: "elevator"},
		{ID: "loading-bay", Name: "Loading Bay", Icon: "truck"},
		{ID: "backup-power", Name: "Backup Power", Icon: "generator"},
	},
	CategoryInvestment: {
		{ID: "title-docs", Name: "Title Documents", Icon: "file"},
		{ID: "managed", Name: "Professionally Managed", Icon: "briefcase"},
	},
	CategoryLand: {
		{ID: "walled", Name: "Walled", Icon: "wall"},
		{ID: "road-access", Name: "Road Access", Icon: "road"},
	},
	CategoryFjord: {
		{ID: "pool", Name: "Swimming Pool", Icon: "pool"},
		{ID: "gym", Name: "Gym", Icon: "dumbbell"},
		{ID: "concierge", Name: "Concierge", Icon: "bell"},
		{ID: "spa", Name: "Spa", Icon: "spa"},
	},
}

var paymentOptionsByNeed = map[Need][]PaymentOption{
	NeedBuy:  {PaymentOutright, PaymentMortgage, PaymentInstallment},
	NeedRent: {PaymentMonthly, PaymentQuarterly, PaymentAnnually},
}

// Yasal durum geçişleri
var statusTransitions = map[Status][]Status{
	StatusUnpublished: {StatusPublished, StatusArchived},
	StatusPublished:   {StatusUnpublished, StatusArchived, StatusClosed},
	StatusArchived:    {StatusUnpublished},
	StatusClosed:      {},
}

// Categories emlak kategorilerini döner
func Categories() []Category {
	return []Category{CategoryResidential, CategoryCommercial, CategoryInvestment, CategoryLand, CategoryFjord}
}

// ServiceCategories servis kategorilerini döner
func ServiceCategories() []Category {
	return []Category{CategoryHomeServices, CategoryProfessionalServices}
}

// ValidCategory kategori değerinin tanımlı olup olmadığını kontrol eder
func ValidCategory(c Category) bool {
	_, ok := needsByCategory[c]
	return ok
}

// NeedsFor kategoriye izin verilen need değerlerini döner
func NeedsFor(c Category) []Need {
	return needsByCategory[c]
}

// DefaultNeed kategorinin ilk izin verilen need değerini döner
func DefaultNeed(c Category) Need {
	needs := needsByCategory[c]
	if len(needs) == 0 {
		return ""
	}
	return needs[0]
}

// ValidNeed need değerinin kategori için yasal olup olmadığını kontrol eder
func ValidNeed(c Category, n Need) bool {
	for _, allowed := range needsByCategory[c] {
		if allowed == n {
			return true
		}
	}
	return false
}

// SubTypesFor kategoriye izin verilen alt tipleri döner
func SubTypesFor(c Category) []string {
	return subTypesByCategory[c]
}

// RequiresSubType kategorinin alt tip gerektirip gerektirmediğini döner
func RequiresSubType(c Category) bool {
	return len(subTypesByCategory[c]) > 0
}

// ValidSubType alt tipin kategori için yasal olup olmadığını kontrol eder
func ValidSubType(c Category, subType string) bool {
	for _, allowed := range subTypesByCategory[c] {
		if allowed == subType {
			return true
		}
	}
	return false
}

// GeneralAmenities kategoriden bağımsız sabit olanakları döner
func GeneralAmenities() []AmenityDef {
	return generalAmenities
}

// CategoryAmenities kategoriye özgü sabit olanakları döner
func CategoryAmenities(c Category) []AmenityDef {
	return categoryAmenities[c]
}

// PaymentOptionsFor need değerine göre ödeme seçeneklerini döner.
// Sadece Buy ve Rent için anlamlıdır, diğerleri boş döner.
func PaymentOptionsFor(n Need) []PaymentOption {
	return paymentOptionsByNeed[n]
}

// ValidPaymentOption ödeme seçeneğinin need için yasal olup olmadığını kontrol eder
func ValidPaymentOption(n Need, opt PaymentOption) bool {
	for _, allowed := range paymentOptionsByNeed[n] {
		if allowed == opt {
			return true
		}
	}
	return false
}

// SupportsRooms kategorinin oda/banyo/otopark alanları taşıyıp taşımadığını döner
func SupportsRooms(c Category) bool {
	switch c {
	case CategoryResidential, CategoryCommercial, CategoryFjord:
		return true
	}
	return false
}

// Currencies desteklenen para birimlerini döner
func Currencies() []Currency {
	return []Currency{CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyGHS, CurrencyNGN}
}

// SizeUnits desteklenen alan birimlerini döner
func SizeUnits() []SizeUnit {
	return []SizeUnit{SizeUnitSqm, SizeUnitSqft, SizeUnitAcre, SizeUnitHectare}
}

// ValidStatus durum değerinin tanımlı olup olmadığını kontrol eder
func ValidStatus(s Status) bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition durum geçişinin yasal olup olmadığını kontrol eder
func CanTransition(from, to Status) bool {
	for _, allowed := range statusTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
