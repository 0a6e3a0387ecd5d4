package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/campuscanteen/canteen-app/utils"
)

// Mailer delivers one-time codes. Real delivery lives outside this app; the
// default implementation just logs the code.
type Mailer interface {
	SendOTP(email, code string) error
}

type LogMailer struct{}

func (LogMailer) SendOTP(email, code string) error {
	utils.InfoLogger.Printf("OTP for %s: %s", email, code)
	return nil
}

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPService issues 4-digit one-time codes with a per-entry TTL. Codes are
// single-use: Verify consumes the entry under the lock, so a code can never
// be redeemed twice.
type OTPService struct {
	mu     sync.Mutex
	codes  map[string]otpEntry
	ttl    time.Duration
	mailer Mailer
}

func NewOTPService(mailer Mailer) *OTPService {
	return &OTPService{
		codes:  make(map[string]otpEntry),
		ttl:    5 * time.Minute,
		mailer: mailer,
	}
}

// Issue generates a fresh code for the email, replacing any earlier one,
// and hands it to the mailer.
func (s *OTPService) Issue(email string) error {
	n, err := rand.Int(rand.Reader, big.NewInt(9000))
	if err != nil {
		return err
	}
	code := fmt.Sprintf("%d", n.Int64()+1000)

	s.mu.Lock()
	s.codes[email] = otpEntry{code: code, expiresAt: time.Now().Add(s.ttl)}
	s.mu.Unlock()

	return s.mailer.SendOTP(email, code)
}

// Verify checks the code for the email and consumes it on success. Expired
// or already-consumed codes fail.
func (s *OTPService) Verify(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.codes[email]
	if !exists {
		return false
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.codes, email)
		return false
	}
	if entry.code != code {
		return false
	}
	delete(s.codes, email)
	return true
}

// StartCleanup sweeps expired entries every minute so abandoned codes do not
// accumulate.
func (s *OTPService) StartCleanup() {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			s.mu.Lock()
			now := time.Now()
			for email, entry := range s.codes {
				if now.After(entry.expiresAt) {
					delete(s.codes, email)
				}
			}
			s.mu.Unlock()
		}
	}()
}
