package announcement

import (
	"context"
	"fmt"
	"log"
	"time"

	"ClassBoard/internal/config"
	"ClassBoard/internal/teacher"
)

// TeacherDirectory lists the teachers reachable by email for broadcasts.
type TeacherDirectory interface {
	ListWithEmail(ctx context.Context) ([]teacher.Teacher, error)
}

// Notifier emails teachers when a new announcement is posted. Best effort:
// failures are logged and never surface to the creating request.
type Notifier struct {
	email    *config.EmailService
	teachers TeacherDirectory
}

// NewNotifier creates a new Notifier.
func NewNotifier(email *config.EmailService, teachers TeacherDirectory) *Notifier {
	return &Notifier{email: email, teachers: teachers}
}

// AnnouncementCreated dispatches the broadcast in the background. Safe to
// call on a nil Notifier or with email disabled.
func (n *Notifier) AnnouncementCreated(a *Announcement) {
	if n == nil || !n.email.Enabled() {
		return
	}
	go n.broadcast(a)
}

func (n *Notifier) broadcast(a *Announcement) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	teachers, err := n.teachers.ListWithEmail(ctx)
	if err != nil {
		log.Println("Failed to fetch teachers for announcement broadcast:", err)
		return
	}
	subject := "New announcement"
	body := fmt.Sprintf("%s posted an announcement: %s", a.CreatedBy, a.Message)
	for _, t := range teachers {
		if err := n.email.SendEmail(t.Email, subject, body); err != nil {
			log.Printf("Failed to email %s about announcement %s: %v", t.Email, a.ID.Hex(), err)
		}
	}
}
