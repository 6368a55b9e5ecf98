package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"sync"
	"time"

	"go-studio-backend/config"

	"github.com/google/uuid"
)

const (
	dialTimeout = 5 * time.Second
	sendTimeout = 10 * time.Second
)

// Message is one outbound email. It lives for a single request: built
// by the submission workflow, handed to the sender, then discarded.
type Message struct {
	To      string
	From    string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender dispatches a message and returns its transport-assigned
// message id.
type Sender interface {
	Send(ctx context.Context, msg *Message) (string, error)
	IsConfigured() bool
}

// Mailer sends mail over SMTP. A single connection is established
// lazily on first send and reused across requests; all sends are
// serialized through one mutex, which also guarantees the connection
// is initialized at most once under concurrent first requests.
type Mailer struct {
	host     string
	port     string
	username string
	password string

	mu      sync.Mutex
	client  *smtp.Client
	netConn net.Conn
}

// NewMailer creates the shared SMTP mailer. Construct once at startup
// and inject wherever mail is sent.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUser,
		password: cfg.SMTPPassword,
	}
}

// IsConfigured checks if the mailer has valid SMTP configuration
func (m *Mailer) IsConfigured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// Send dispatches one message synchronously and returns its message id.
// On any transport error the cached connection is dropped so the next
// send re-dials.
func (m *Mailer) Send(ctx context.Context, msg *Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureClient(ctx); err != nil {
		return "", err
	}

	id := m.newMessageID(msg.From)
	if err := m.transmit(msg, id); err != nil {
		m.reset()
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	return id, nil
}

// ensureClient dials and authenticates if no live connection is cached.
// Caller must hold m.mu.
func (m *Mailer) ensureClient(ctx context.Context) error {
	if m.client != nil {
		// Reused connections can have been dropped by the relay; probe
		// before trusting it.
		_ = m.netConn.SetDeadline(time.Now().Add(sendTimeout))
		if err := m.client.Noop(); err == nil {
			return nil
		}
		m.reset()
	}

	addr := net.JoinHostPort(m.host, m.port)
	dialer := net.Dialer{Timeout: dialTimeout}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to mail relay: %w", err)
	}

	// Greeting, STARTTLS and AUTH all run under one deadline.
	_ = conn.SetDeadline(time.Now().Add(sendTimeout))

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("mail relay greeting failed: %w", err)
	}

	if ok, _ := client.Extension("STARTTLS"); ok {
		if err := client.StartTLS(&tls.Config{ServerName: m.host, MinVersion: tls.VersionTLS12}); err != nil {
			client.Close()
			return fmt.Errorf("starttls failed: %w", err)
		}
	}

	if ok, _ := client.Extension("AUTH"); ok {
		auth := smtp.PlainAuth("", m.username, m.password, m.host)
		if err := client.Auth(auth); err != nil {
			client.Close()
			return fmt.Errorf("smtp auth failed: %w", err)
		}
	}

	m.client = client
	m.netConn = conn
	return nil
}

// transmit runs one MAIL/RCPT/DATA exchange. Caller must hold m.mu.
func (m *Mailer) transmit(msg *Message, id string) error {
	_ = m.netConn.SetDeadline(time.Now().Add(sendTimeout))

	if err := m.client.Mail(msg.From); err != nil {
		return err
	}
	if err := m.client.Rcpt(msg.To); err != nil {
		return err
	}
	w, err := m.client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(buildMIME(msg, id)); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// reset drops the cached connection. Caller must hold m.mu.
func (m *Mailer) reset() {
	if m.client != nil {
		m.client.Close()
	}
	m.client = nil
	m.netConn = nil
}

// Close terminates the shared connection gracefully.
func (m *Mailer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client == nil {
		return nil
	}
	err := m.client.Quit()
	m.client = nil
	m.netConn = nil
	return err
}

// newMessageID assigns an RFC 5322 message id, scoped to the sender
// domain so replies and threading resolve sanely.
func (m *Mailer) newMessageID(from string) string {
	domain := m.host
	if at := strings.LastIndex(from, "@"); at >= 0 && at < len(from)-1 {
		domain = from[at+1:]
	}
	return fmt.Sprintf("<%s@%s>", uuid.New().String(), domain)
}

// buildMIME constructs the raw HTML email.
func buildMIME(msg *Message, id string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", msg.From)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	if msg.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	fmt.Fprintf(&b, "Message-ID: %s\r\n", id)
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
