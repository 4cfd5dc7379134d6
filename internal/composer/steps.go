package composer

// StepDef bir sihirbaz adımının adı ve geçerlilik yüklemidir
type StepDef struct {
	Name  string
	Valid func(*ListingDraft) bool
}

// PropertySteps emlak sihirbazının 6 adımını döner
func PropertySteps() []StepDef {
	return []StepDef{
		{Name: "Type & Need", Valid: TypeNeedComplete},
		{Name: "Overview", Valid: OverviewComplete},
		{Name: "Details & Media", Valid: alwaysComplete},
		{Name: "Amenities & Payment", Valid: alwaysComplete},
		{Name: "FAQs", Valid: alwaysComplete},
		{Name: "Preview", Valid: alwaysComplete}, // onay submit anında istenir
	}
}

// ServiceSteps servis sihirbazının 4 adımını döner
func ServiceSteps() []StepDef {
	return []StepDef{
		{Name: "Service Type", Valid: TypeNeedComplete},
		{Name: "Overview", Valid: ServiceOverviewComplete},
		{Name: "Media & FAQs", Valid: alwaysComplete},
		{Name: "Preview", Valid: alwaysComplete},
	}
}

// Sequencer sabit adım dizisinde doğrusal ilerlemeyi tutar.
// currentStep her zaman [1, N] aralığındadır, adım atlama yoktur.
type Sequencer struct {
	steps   []StepDef
	current int
}

func NewSequencer(steps []StepDef) *Sequencer {
	return &Sequencer{steps: steps, current: 1}
}

// Current geçerli adım numarasını döner (1 tabanlı)
func (s *Sequencer) Current() int {
	return s.current
}

// StepName geçerli adımın adını döner
func (s *Sequencer) StepName() string {
	return s.steps[s.current-1].Name
}

// Len toplam adım sayısını döner
func (s *Sequencer) Len() int {
	return len(s.steps)
}

// Advance bir adım ilerler, son adımda no-op
func (s *Sequencer) Advance() {
	if s.current < len(s.steps) {
		s.current++
	}
}

// Retreat bir adım geri gider, ilk adımda no-op
func (s *Sequencer) Retreat() {
	if s.current > 1 {
		s.current--
	}
}

// AtEnd son adımda (Preview) olup olmadığını döner
func (s *Sequencer) AtEnd() bool {
	return s.current == len(s.steps)
}

// Reset ilk adıma döner
func (s *Sequencer) Reset() {
	s.current = 1
}

// StepValid verilen adımın geçerlilik yüklemini taslak üzerinde çalıştırır
func (s *Sequencer) StepValid(step int, d *ListingDraft) bool {
	if step < 1 || step > len(s.steps) {
		return false
	}
	return s.steps[step-1].Valid(d)
}

// CurrentValid geçerli adımın geçerlilik yüklemini çalıştırır
func (s *Sequencer) CurrentValid(d *ListingDraft) bool {
	return s.StepValid(s.current, d)
}

// AllValid tüm adım kapılarının aynı anda sağlanıp sağlanmadığını döner.
// Taslak ancak bu durumda submit edilebilir.
func (s *Sequencer) AllValid(d *ListingDraft) bool {
	for i := 1; i <= len(s.steps); i++ {
		if !s.StepValid(i, d) {
			return false
		}
	}
	return true
}
