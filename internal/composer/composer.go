package composer

import (
	"context"
	"errors"

	"listora_admin/internal/catalog"
)

var (
	ErrConfirmationRequired = errors.New("submission requires explicit confirmation")
	ErrSubmitInFlight       = errors.New("a submission is already in flight")
	ErrDraftIncomplete      = errors.New("draft does not pass all step gates")
	ErrComposerClosed       = errors.New("composer session is closed")
)

// Gateway assembled payload'u kabul eden dış işbirlikçidir. Composer
// transport hatalarını yorumlamaz, yeniden denemez, sadece yüzeye çıkarır.
type Gateway interface {
	SubmitListing(ctx context.Context, p *Payload) error
}

// Composer tek bir sihirbaz oturumudur: bir taslak + bir sequencer.
// UI tek yazıcıdır; eşzamanlılık koruması session katmanındadır.
type Composer struct {
	draft *ListingDraft
	seq   *Sequencer
	gw    Gateway

	submitting bool
	generation uint64
	closed     bool
}

// New create modunda yeni bir composer açar
func New(gw Gateway, kind catalog.ListingKind, category catalog.Category) (*Composer, error) {
	if !catalog.ValidCategory(category) {
		return nil, ErrUnknownCategory
	}
	return &Composer{
		draft: NewDraft(kind, category),
		seq:   NewSequencer(stepsForKind(kind)),
		gw:    gw,
	}, nil
}

// NewForEdit edit modunda, mevcut kayıttan hydrate ederek composer açar
func NewForEdit(gw Gateway, rec ListingRecord) *Composer {
	draft := HydrateDraft(rec)
	return &Composer{
		draft: draft,
		seq:   NewSequencer(stepsForKind(draft.Kind)),
		gw:    gw,
	}
}

func stepsForKind(kind catalog.ListingKind) []StepDef {
	if kind == catalog.KindService {
		return ServiceSteps()
	}
	return PropertySteps()
}

// Draft aktif taslağı döner
func (c *Composer) Draft() *ListingDraft {
	return c.draft
}

// Step geçerli adım numarasını döner
func (c *Composer) Step() int {
	return c.seq.Current()
}

// StepName geçerli adımın adını döner
func (c *Composer) StepName() string {
	return c.seq.StepName()
}

// TotalSteps toplam adım sayısını döner
func (c *Composer) TotalSteps() int {
	return c.seq.Len()
}

// StepValid geçerli adımın kapısının sağlanıp sağlanmadığını döner.
// UI ileri butonunu bununla kilitler; testler de aynı kapıyı kullanır.
func (c *Composer) StepValid() bool {
	return c.seq.CurrentValid(c.draft)
}

// Submittable tüm adım kapılarının aynı anda sağlanıp sağlanmadığını döner
func (c *Composer) Submittable() bool {
	return c.seq.AllValid(c.draft)
}

// Submitting bir gönderimin uçuşta olup olmadığını döner
func (c *Composer) Submitting() bool {
	return c.submitting
}

// Closed oturumun kapanıp kapanmadığını döner
func (c *Composer) Closed() bool {
	return c.closed
}

// Merge taslağa kısmi güncelleme uygular
func (c *Composer) Merge(u DraftUpdate) error {
	if c.closed {
		return ErrComposerClosed
	}
	return c.draft.Merge(u)
}

// Advance bir adım ilerler (son adımda no-op)
func (c *Composer) Advance() {
	c.seq.Advance()
}

// Retreat bir adım geri gider (ilk adımda no-op)
func (c *Composer) Retreat() {
	c.seq.Retreat()
}

// BeginSubmit gönderim denemesini başlatır: onayı ve kapıları kontrol eder,
// taslağın anlık görüntüsünden payload'u kurar ve denemeyi bir üretim
// sayacıyla işaretler. Gateway çağrısı kilit dışında yapılsın diye
// payload'u çağırana bırakır.
func (c *Composer) BeginSubmit(confirm bool) (*Payload, uint64, error) {
	if c.closed {
		return nil, 0, ErrComposerClosed
	}
	if !confirm {
		return nil, 0, ErrConfirmationRequired
	}
	if c.submitting {
		return nil, 0, ErrSubmitInFlight
	}
	if !c.Submittable() {
		return nil, 0, ErrDraftIncomplete
	}

	payload, err := Assemble(c.draft)
	if err != nil {
		return nil, 0, err
	}
	c.submitting = true
	return payload, c.generation, nil
}

// FinishSubmit gateway çağrısının sonucunu uygular. Oturum bu arada
// sıfırlanmış ya da kapanmışsa (bayat üretim) sonuç yok sayılır.
// Başarıda taslak varsayılanlara döner, adım 1'e iner ve oturum kapanır.
// Hatada taslak ve adım aynen korunur, kullanıcı yeniden deneyebilir.
func (c *Composer) FinishSubmit(generation uint64, submitErr error) (closed bool, err error) {
	if c.closed || generation != c.generation {
		return false, nil
	}
	c.submitting = false

	if submitErr != nil {
		return false, submitErr
	}

	c.draft = NewDraft(c.draft.Kind, c.draft.Category)
	c.seq.Reset()
	c.generation++
	c.closed = true
	return true, nil
}

// Submit tek çağrıda senkron gönderim yapar. HTTP katmanı kilidi gateway
// çağrısı boyunca tutmamak için Begin/Finish çiftini kullanır; bu yol
// testler ve basit çağıranlar içindir.
func (c *Composer) Submit(ctx context.Context, confirm bool) error {
	payload, generation, err := c.BeginSubmit(confirm)
	if err != nil {
		return err
	}
	submitErr := c.gw.SubmitListing(ctx, payload)
	_, err = c.FinishSubmit(generation, submitErr)
	return err
}

// Cancel oturumu kapatır ve taslağı terk eder. Uçuştaki bir gönderim
// iptal edilmez, üretim sayacı artırıldığı için sonucu yok sayılır.
func (c *Composer) Cancel() {
	c.generation++
	c.closed = true
}
