package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"krishimitra-backend/internal/advisory"
	"krishimitra-backend/internal/advisory/repository"
	"krishimitra-backend/internal/intent"
	"krishimitra-backend/internal/model"
)

func newSchemeUseCase(llm *fakeLLM, classified intent.Intent) *implUseCase {
	uc := New(
		&mockLogger{},
		singleRecordRepo(model.SoilRecord{SurveyNo: "12"}),
		&fakeClassifier{output: intent.ClassifierOutput{Intent: classified}},
		newTestBundle(),
		nil,
		nil,
		llm,
		3,
		24,
	)
	uc.now = kharifTime
	return uc
}

func TestQuery_Scheme(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{AadhaarNo: "1234"}

	t.Run("llm answer", func(t *testing.T) {
		uc := newSchemeUseCase(&fakeLLM{text: "PMFBY covers crop loss from drought."}, intent.IntentScheme)
		out, err := uc.Query(ctx, sc, advisory.QueryInput{AadhaarNo: "1234", Query: "crop insurance?"})
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if out.Intent != intent.IntentScheme {
			t.Errorf("Intent = %q", out.Intent)
		}
		if out.Answer != "PMFBY covers crop loss from drought." {
			t.Errorf("Answer = %q", out.Answer)
		}
	})

	t.Run("profile attached for eligibility", func(t *testing.T) {
		llm := &fakeLLM{text: "Scheme(s) name: PM-KISAN"}
		uc := newSchemeUseCase(llm, intent.IntentScheme)

		_, err := uc.Query(ctx, sc, advisory.QueryInput{AadhaarNo: "1234", Query: "am I eligible for PM-KISAN?"})
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if llm.lastReq == nil || len(llm.lastReq.Messages) == 0 {
			t.Fatal("no request captured")
		}
		prompt := llm.lastReq.Messages[0].Parts[0].Text
		if !strings.Contains(prompt, "farmer_profile") || !strings.Contains(prompt, "Nashik") {
			t.Errorf("prompt = %q, want farmer_profile with district", prompt)
		}
		if strings.Contains(prompt, "1234") {
			t.Errorf("prompt = %q, aadhaar number must not be sent", prompt)
		}
	})

	t.Run("answers without profile when lookup fails", func(t *testing.T) {
		llm := &fakeLLM{text: "PMFBY covers crop loss."}
		uc := newSchemeUseCase(llm, intent.IntentScheme)
		uc.repo = &fakeRepo{
			getFarmer: func(ctx context.Context, aadhaarNo string) (model.FarmerProfile, error) {
				return model.FarmerProfile{}, repository.ErrNotFound
			},
		}

		out, err := uc.Query(ctx, sc, advisory.QueryInput{AadhaarNo: "1234", Query: "crop insurance?"})
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if out.Answer != "PMFBY covers crop loss." {
			t.Errorf("Answer = %q", out.Answer)
		}
		if strings.Contains(llm.lastReq.Messages[0].Parts[0].Text, "farmer_profile") {
			t.Error("prompt carries a profile despite lookup failure")
		}
	})

	t.Run("fixed fallback when LLM down", func(t *testing.T) {
		uc := newSchemeUseCase(&fakeLLM{err: errors.New("all providers failed")}, intent.IntentScheme)
		out, err := uc.Query(ctx, sc, advisory.QueryInput{AadhaarNo: "1234", Query: "crop insurance?"})
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if out.Answer != SchemeFallbackAnswer {
			t.Errorf("Answer = %q, want fixed fallback", out.Answer)
		}
		if !strings.Contains(out.Answer, "cannot fetch scheme details") {
			t.Errorf("Answer = %q, want cannot-fetch wording", out.Answer)
		}
		if !out.Degraded {
			t.Error("Degraded = false")
		}
	})
}

func TestQuery_General(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{AadhaarNo: "1234"}

	t.Run("llm answer", func(t *testing.T) {
		uc := newSchemeUseCase(&fakeLLM{text: "Namaste! How can I help?"}, intent.IntentGeneral)
		out, err := uc.Query(ctx, sc, advisory.QueryInput{AadhaarNo: "1234", Query: "hello"})
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if out.Intent != intent.IntentGeneral {
			t.Errorf("Intent = %q", out.Intent)
		}
	})

	t.Run("fallback when LLM down", func(t *testing.T) {
		uc := newSchemeUseCase(&fakeLLM{err: errors.New("down")}, intent.IntentGeneral)
		out, err := uc.Query(ctx, sc, advisory.QueryInput{AadhaarNo: "1234", Query: "hello"})
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if out.Answer != GeneralFallbackAnswer || !out.Degraded {
			t.Errorf("out = %+v, want degraded fallback", out)
		}
	})

	t.Run("classifier failure routes to general", func(t *testing.T) {
		uc := newSchemeUseCase(&fakeLLM{text: "Namaste!"}, intent.IntentGeneral)
		uc.classifier = &fakeClassifier{err: errors.New("classifier down")}

		out, err := uc.Query(ctx, sc, advisory.QueryInput{AadhaarNo: "1234", Query: "hello"})
		if err != nil {
			t.Fatalf("Query() error = %v", err)
		}
		if out.Intent != intent.IntentGeneral {
			t.Errorf("Intent = %q, want general", out.Intent)
		}
	})
}
