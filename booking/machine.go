package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"etix/config"
	"etix/models"
	"etix/types"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type EffectKind string

const (
	EFFECT_SUBMIT      EffectKind = "submit"
	EFFECT_REDIRECT    EffectKind = "redirect"
	EFFECT_START_TIMER EffectKind = "start_timer"
	EFFECT_STOP_TIMER  EffectKind = "stop_timer"
	EFFECT_RENDER_QR   EffectKind = "render_qr"
)

// Effect is a side-effect descriptor returned by a transition. The machine
// itself never performs I/O; the Session interprets effects.
type Effect struct {
	Kind       EffectKind
	Submission *types.CreateRegistrationRequestBody
	Target     string
	Seconds    int
	Token      string
}

// Machine walks one participant through categories -> participant -> payment
// -> success. The payment step is skipped for free tiers. All transitions
// are pure apart from mutating the receiver.
type Machine struct {
	AttemptID     uuid.UUID
	EventID       uint
	Step          types.BookingStep
	Event         *models.Event
	Categories    []models.TicketCategory
	Selected      *models.TicketCategory
	Participant   types.ParticipantData
	PaymentMethod string
	Result        *models.Registration
	FieldErrors   map[string]string
	ErrMessage    string
	Submitting    bool
	SecondsLeft   int
}

func NewMachine(event *models.Event, categories []models.TicketCategory) *Machine {
	return &Machine{
		AttemptID:   uuid.New(),
		EventID:     event.ID,
		Event:       event,
		Categories:  categories,
		Step:        types.STEP_CATEGORIES,
		SecondsLeft: config.BookingTimeoutSeconds(),
	}
}

var birthdateValidatorFunc validator.Func = func(fl validator.FieldLevel) bool {
	date, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	parsed, err := time.Parse(config.DATE_PARSE_FORMAT, date)
	if err != nil {
		return false
	}
	return parsed.Before(time.Now())
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("birthdate", birthdateValidatorFunc)
	return v
}

// SelectCategory moves categories -> participant when the tier is available.
// Inactive or sold-out tiers are ignored and the machine stays put.
func (m *Machine) SelectCategory(id uint) []Effect {
	if m.Step != types.STEP_CATEGORIES {
		return nil
	}
	for i := range m.Categories {
		c := &m.Categories[i]
		if c.ID != id {
			continue
		}
		if !c.Available() {
			return nil
		}
		m.Selected = c
		m.Step = types.STEP_PARTICIPANT
		return []Effect{{Kind: EFFECT_START_TIMER, Seconds: m.SecondsLeft}}
	}
	return nil
}

// SubmitParticipant validates the form. For free tiers it submits directly,
// jumping participant -> success without visiting payment.
func (m *Machine) SubmitParticipant(p types.ParticipantData) []Effect {
	if m.Step != types.STEP_PARTICIPANT || m.Selected == nil || m.Submitting {
		return nil
	}
	m.FieldErrors = map[string]string{}
	m.ErrMessage = ""
	if err := validate.Struct(&p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				m.FieldErrors[fieldName(fe.Field())] = fieldMessage(fe)
			}
		} else {
			m.ErrMessage = err.Error()
		}
		return nil
	}
	m.Participant = p
	if m.Selected.Free() {
		m.Submitting = true
		return []Effect{{
			Kind:       EFFECT_SUBMIT,
			Submission: m.submission(types.PAYMENT_STATUS_PAID, types.PAYMENT_METHOD_FREE),
		}}
	}
	m.Step = types.STEP_PAYMENT
	return nil
}

func (m *Machine) SelectPaymentMethod(method string) {
	if m.Step != types.STEP_PAYMENT {
		return
	}
	m.PaymentMethod = strings.TrimSpace(method)
}

// ConfirmPayment submits a paid registration. It requires a chosen payment
// method and is a no-op while a submission is already in flight.
func (m *Machine) ConfirmPayment() []Effect {
	if m.Step != types.STEP_PAYMENT || m.Submitting || m.PaymentMethod == "" {
		return nil
	}
	m.Submitting = true
	return []Effect{{
		Kind:       EFFECT_SUBMIT,
		Submission: m.submission(types.PAYMENT_STATUS_PENDING, m.PaymentMethod),
	}}
}

// HandleSubmitResult records the submitter outcome. Results arriving after
// the countdown already aborted the flow are discarded.
func (m *Machine) HandleSubmitResult(reg *models.Registration, err error) []Effect {
	if m.Step == types.STEP_ABORTED || m.Step == types.STEP_SUCCESS {
		return nil
	}
	m.Submitting = false
	if err != nil {
		m.ErrMessage = err.Error()
		return nil
	}
	m.Result = reg
	m.Step = types.STEP_SUCCESS
	effects := []Effect{{Kind: EFFECT_STOP_TIMER}}
	if reg.QRPayload == nil && reg.AttendanceToken != "" {
		effects = append(effects, Effect{Kind: EFFECT_RENDER_QR, Token: reg.AttendanceToken})
	}
	return effects
}

// Tick advances the countdown one second. At zero the flow is forced back to
// the event detail page regardless of any in-flight request.
func (m *Machine) Tick() []Effect {
	switch m.Step {
	case types.STEP_CATEGORIES, types.STEP_SUCCESS, types.STEP_ABORTED:
		return nil
	}
	if m.SecondsLeft > 0 {
		m.SecondsLeft--
	}
	if m.SecondsLeft > 0 {
		return nil
	}
	m.abort()
	return []Effect{
		{Kind: EFFECT_STOP_TIMER},
		{Kind: EFFECT_REDIRECT, Target: m.EventDetailPath()},
	}
}

// Back is always permitted before success and discards the data collected at
// the current step.
func (m *Machine) Back() []Effect {
	switch m.Step {
	case types.STEP_PAYMENT:
		m.PaymentMethod = ""
		m.Step = types.STEP_PARTICIPANT
		return nil
	case types.STEP_PARTICIPANT:
		m.Selected = nil
		m.Participant = types.ParticipantData{}
		m.FieldErrors = nil
		m.ErrMessage = ""
		m.SecondsLeft = config.BookingTimeoutSeconds()
		m.Step = types.STEP_CATEGORIES
		return []Effect{{Kind: EFFECT_STOP_TIMER}}
	case types.STEP_CATEGORIES:
		m.abort()
		return []Effect{
			{Kind: EFFECT_STOP_TIMER},
			{Kind: EFFECT_REDIRECT, Target: m.EventDetailPath()},
		}
	}
	return nil
}

func (m *Machine) EventDetailPath() string {
	return fmt.Sprintf("/events/%d", m.EventID)
}

func (m *Machine) abort() {
	m.Step = types.STEP_ABORTED
	m.Selected = nil
	m.Participant = types.ParticipantData{}
	m.PaymentMethod = ""
	m.FieldErrors = nil
}

// submission snapshots the collected data. total_harga is the category price
// at submission time and never changes afterwards.
func (m *Machine) submission(paymentStatus string, method string) *types.CreateRegistrationRequestBody {
	return &types.CreateRegistrationRequestBody{
		TicketCategoryID: m.Selected.ID,
		NamaPeserta:      m.Participant.NamaPeserta,
		JenisKelamin:     m.Participant.JenisKelamin,
		TanggalLahir:     m.Participant.TanggalLahir,
		EmailPeserta:     m.Participant.EmailPeserta,
		TotalHarga:       m.Selected.Harga,
		PaymentStatus:    paymentStatus,
		PaymentMethod:    method,
	}
}

func fieldName(structField string) string {
	switch structField {
	case "NamaPeserta":
		return "nama_peserta"
	case "JenisKelamin":
		return "jenis_kelamin"
	case "TanggalLahir":
		return "tanggal_lahir"
	case "EmailPeserta":
		return "email_peserta"
	}
	return strings.ToLower(structField)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "birthdate":
		return "must be a valid past date"
	case "oneof":
		return "invalid value"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}
