package orchestrators_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"nexus/internal/adapters/email"
	"nexus/internal/application/orchestrators"
	domain "nexus/internal/domain/inquiry"
)

// mockInquiryStore records saves in memory.
type mockInquiryStore struct {
	saved   []domain.Inquiry
	saveErr error
}

func (m *mockInquiryStore) Save(ctx context.Context, inq domain.Inquiry) (domain.Inquiry, error) {
	if m.saveErr != nil {
		return domain.Inquiry{}, m.saveErr
	}
	inq.ID = "inq-1"
	m.saved = append(m.saved, inq)
	return inq, nil
}

// mockSender records send requests.
type mockSender struct {
	sent    []email.SendRequest
	sendErr error
}

func (m *mockSender) Send(ctx context.Context, req email.SendRequest) (email.SendResult, error) {
	if m.sendErr != nil {
		return email.SendResult{}, m.sendErr
	}
	m.sent = append(m.sent, req)
	return email.SendResult{MessageID: "msg-1"}, nil
}

func validCommand() orchestrators.SubmitContactCommand {
	return orchestrators.SubmitContactCommand{
		Name:    "  Jordan Reyes  ",
		Email:   "jordan@example.edu",
		Subject: "Sponsorship",
		Body:    "Our company would like to sponsor your next hackathon.",
	}
}

func TestExecuteSubmitContact_SavesAndNotifies(t *testing.T) {
	store := &mockInquiryStore{}
	sender := &mockSender{}
	deps := orchestrators.SubmitContactDeps{
		InquiryStore: store,
		Sender:       sender,
		NotifyTo:     "board@nexus.example.edu",
	}

	result, err := orchestrators.ExecuteSubmitContact(context.Background(), validCommand(), deps)
	if err != nil {
		t.Fatalf("ExecuteSubmitContact failed: %v", err)
	}
	if result.InquiryID != "inq-1" {
		t.Errorf("InquiryID = %q, want inq-1", result.InquiryID)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved %d inquiries, want 1", len(store.saved))
	}
	if store.saved[0].Name != "Jordan Reyes" {
		t.Errorf("Name = %q, want trimmed", store.saved[0].Name)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1", len(sender.sent))
	}
	req := sender.sent[0]
	if req.To[0] != "board@nexus.example.edu" {
		t.Errorf("To = %v", req.To)
	}
	if req.ReplyTo != "jordan@example.edu" {
		t.Errorf("ReplyTo = %q, want the submitter's address", req.ReplyTo)
	}
	if !strings.Contains(req.Subject, "Sponsorship") {
		t.Errorf("Subject = %q, want the inquiry subject carried", req.Subject)
	}
}

func TestExecuteSubmitContact_ValidationBlocksSave(t *testing.T) {
	store := &mockInquiryStore{}
	deps := orchestrators.SubmitContactDeps{InquiryStore: store}

	cmd := validCommand()
	cmd.Email = "not-an-address"
	result, err := orchestrators.ExecuteSubmitContact(context.Background(), cmd, deps)
	if !errors.Is(err, orchestrators.ErrContactValidation) {
		t.Fatalf("err = %v, want ErrContactValidation", err)
	}
	if len(store.saved) != 0 {
		t.Errorf("saved %d inquiries, want 0", len(store.saved))
	}
	if _, ok := result.FieldErrs["email"]; !ok {
		t.Errorf("expected email field error, got %v", result.FieldErrs)
	}
}

func TestExecuteSubmitContact_NotifyFailureDoesNotFailSubmission(t *testing.T) {
	store := &mockInquiryStore{}
	sender := &mockSender{sendErr: errors.New("provider down")}
	deps := orchestrators.SubmitContactDeps{
		InquiryStore: store,
		Sender:       sender,
		NotifyTo:     "board@nexus.example.edu",
	}

	result, err := orchestrators.ExecuteSubmitContact(context.Background(), validCommand(), deps)
	if err != nil {
		t.Fatalf("submission should succeed despite notify failure: %v", err)
	}
	if result.InquiryID == "" {
		t.Error("expected an inquiry ID")
	}
	if len(store.saved) != 1 {
		t.Errorf("saved %d inquiries, want 1", len(store.saved))
	}
}

func TestExecuteSubmitContact_SaveFailure(t *testing.T) {
	store := &mockInquiryStore{saveErr: errors.New("disk full")}
	deps := orchestrators.SubmitContactDeps{InquiryStore: store}

	if _, err := orchestrators.ExecuteSubmitContact(context.Background(), validCommand(), deps); err == nil {
		t.Fatal("expected save error to propagate")
	}
}
