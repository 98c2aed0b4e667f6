package booking

import (
	"context"
	"log"
	"sync"

	"etix/lib"
	"etix/models"
	"etix/types"

	"github.com/go-co-op/gocron/v2"
)

// Session drives one booking attempt: it owns a Machine, interprets its side
// effects against the backend, and runs the one-second countdown job. Only
// one submission can be in flight at a time; the machine's Submitting flag
// guards re-entry. The countdown fires on a scheduler goroutine, so every
// field is accessed under mu.
type Session struct {
	mu      sync.Mutex
	machine *Machine
	client  *lib.APIClient
	job     gocron.Job

	redirect string
	qrFile   string
}

func NewSession(client *lib.APIClient, event *models.Event, categories []models.TicketCategory) *Session {
	return &Session{
		machine: NewMachine(event, categories),
		client:  client,
	}
}

// Machine exposes the current state for rendering and assertions. Callers
// must not mutate it, and must not read it while a countdown is running
// unless they synchronized through Redirect or QRFile first.
func (s *Session) Machine() *Machine {
	return s.machine
}

// Redirect reports the path the flow forced navigation to (timeout, back
// from the first step, or a credential problem routing to login).
func (s *Session) Redirect() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.redirect
}

// QRFile reports the locally rendered attendance QR, when the backend did
// not supply a qr_code payload.
func (s *Session) QRFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.qrFile
}

func (s *Session) SelectCategory(ctx context.Context, id uint) {
	s.apply(ctx, func(m *Machine) []Effect { return m.SelectCategory(id) })
}

func (s *Session) SubmitParticipant(ctx context.Context, p types.ParticipantData) {
	s.apply(ctx, func(m *Machine) []Effect { return m.SubmitParticipant(p) })
}

func (s *Session) SelectPaymentMethod(method string) {
	s.mu.Lock()
	s.machine.SelectPaymentMethod(method)
	s.mu.Unlock()
}

func (s *Session) ConfirmPayment(ctx context.Context) {
	s.apply(ctx, func(m *Machine) []Effect { return m.ConfirmPayment() })
}

func (s *Session) Back() {
	s.apply(context.Background(), func(m *Machine) []Effect { return m.Back() })
}

func (s *Session) Tick() {
	s.apply(context.Background(), func(m *Machine) []Effect { return m.Tick() })
}

func (s *Session) apply(ctx context.Context, transition func(m *Machine) []Effect) {
	s.mu.Lock()
	effects := transition(s.machine)
	s.mu.Unlock()
	s.run(ctx, effects)
}

func (s *Session) run(ctx context.Context, effects []Effect) {
	for _, e := range effects {
		switch e.Kind {
		case EFFECT_START_TIMER:
			s.startCountdown()
		case EFFECT_STOP_TIMER:
			s.stopCountdown()
		case EFFECT_REDIRECT:
			s.setRedirect(e.Target)
		case EFFECT_SUBMIT:
			s.submit(ctx, e.Submission)
		case EFFECT_RENDER_QR:
			file, err := lib.SaveTokenQR(e.Token)
			if err != nil {
				log.Printf("Error rendering attendance QR: %s\n", err.Error())
				continue
			}
			s.mu.Lock()
			s.qrFile = file
			s.mu.Unlock()
		}
	}
}

func (s *Session) submit(ctx context.Context, body *types.CreateRegistrationRequestBody) {
	reg, err := SubmitRegistration(ctx, s.client, s.machine.EventID, body)
	if err != nil && lib.RequiresLogin(err) {
		s.mu.Lock()
		s.machine.Submitting = false
		s.mu.Unlock()
		s.setRedirect("/login")
		return
	}
	s.apply(ctx, func(m *Machine) []Effect { return m.HandleSubmitResult(reg, err) })
}

func (s *Session) setRedirect(target string) {
	s.mu.Lock()
	s.redirect = target
	s.mu.Unlock()
}

func (s *Session) startCountdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job != nil {
		return
	}
	j, err := lib.CreateCountdownJob(s.Tick)
	if err != nil {
		log.Printf("Error starting countdown job: %s\n", err.Error())
		return
	}
	s.job = j
}

func (s *Session) stopCountdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.job == nil {
		return
	}
	lib.RemoveJob(s.job)
	s.job = nil
}
