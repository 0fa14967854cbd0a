package ops

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/nmtri/rolecoach/internal/errors"
	"github.com/nmtri/rolecoach/internal/flows"
)

const personaReply = "```json\n" + `{
  "personalityType": "analytical",
  "trustLevel": "2",
  "basicInfo": {"name": "Anh Tuấn", "age": "42"},
  "backgroundStory": "Chủ doanh nghiệp vật liệu xây dựng.",
  "hiddenNeeds": ["Bảo vệ tài sản cho con"],
  "potentialObjections": ["Tôi cần xem số liệu cụ thể"]
}` + "\n```"

func TestGeneratePersona(t *testing.T) {
	gen := &fakeGenerator{reply: personaReply}

	out, err := GeneratePersona(context.Background(), gen, GeneratePersonaInput{
		Description: "Chủ doanh nghiệp 42 tuổi, cẩn trọng",
		Segment:     flows.SegmentHNW,
		FlowType:    flows.FlowNewCustomer,
	})
	if err != nil {
		t.Fatalf("GeneratePersona failed: %v", err)
	}

	c := out.Customer
	if c.PersonalityType != "analytical" {
		t.Errorf("PersonalityType = %q, want analytical", c.PersonalityType)
	}
	if c.DisplayName() != "Anh Tuấn" {
		t.Errorf("DisplayName() = %q, want Anh Tuấn", c.DisplayName())
	}
	if c.Meta == nil {
		t.Fatal("Meta should be stamped")
	}
	if c.Meta.Segment != "hnw" || c.Meta.OriginalDescription != "Chủ doanh nghiệp 42 tuổi, cẩn trọng" {
		t.Errorf("unexpected meta: %+v", c.Meta)
	}

	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "Chủ doanh nghiệp 42 tuổi") {
		t.Error("generation prompt should carry the description")
	}
}

func TestGeneratePersona_DescriptionRequired(t *testing.T) {
	_, err := GeneratePersona(context.Background(), &fakeGenerator{}, GeneratePersonaInput{Description: "  "})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
}

func TestGeneratePersona_GatewayError(t *testing.T) {
	gen := &fakeGenerator{err: errors.NewGateway(stderrors.New("quota"))}

	_, err := GeneratePersona(context.Background(), gen, GeneratePersonaInput{Description: "ai đó"})
	if !errors.Is(err, errors.ErrGateway) {
		t.Fatalf("expected GATEWAY, got %v", err)
	}
}

func TestGeneratePersona_MalformedReply(t *testing.T) {
	gen := &fakeGenerator{reply: "Xin lỗi, tôi không thể tạo JSON."}

	_, err := GeneratePersona(context.Background(), gen, GeneratePersonaInput{Description: "ai đó"})
	if !errors.Is(err, errors.ErrInvalidRequest) {
		t.Fatalf("expected INVALID_REQUEST, got %v", err)
	}
}
