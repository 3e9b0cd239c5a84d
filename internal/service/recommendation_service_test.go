package service

import (
	"context"
	"errors"
	"testing"

	"matching-service/internal/models"
)

type fakeRecPool struct {
	topRated []models.Candidate
	verified []models.Candidate
	byBg     []models.Candidate
	byCat    []models.Candidate
	err      error

	topRatedCalls int
	bgCalls       int
	catCalls      int
}

func (f *fakeRecPool) FindTopRated(ctx context.Context, limit int) ([]models.Candidate, error) {
	f.topRatedCalls++
	return f.topRated, f.err
}

func (f *fakeRecPool) FindVerified(ctx context.Context, limit int) ([]models.Candidate, error) {
	return f.verified, f.err
}

func (f *fakeRecPool) FindByBackground(ctx context.Context, university, major, degreeLevel string, limit int) ([]models.Candidate, error) {
	f.bgCalls++
	return f.byBg, f.err
}

func (f *fakeRecPool) FindByServiceCategory(ctx context.Context, category string, limit int) ([]models.Candidate, error) {
	f.catCalls++
	return f.byCat, f.err
}

type fakeProfiles struct {
	profile *models.MentorProfile
	err     error
}

func (f *fakeProfiles) GetProfileByUserID(ctx context.Context, userID string) (*models.MentorProfile, error) {
	return f.profile, f.err
}

func recCandidate(id string, rating *float64) models.Candidate {
	return models.Candidate{
		MentorSkill: models.MentorSkill{
			ID:                 id,
			SkillID:            "skill-1",
			CanMentor:          true,
			VerificationStatus: models.VerificationVerified,
		},
		Profile: models.MentorProfile{Rating: rating},
	}
}

func TestRecommendUnknownContext(t *testing.T) {
	svc := NewRecommendationService(&fakeRecPool{}, &fakeProfiles{}, nil)
	out, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{Context: "trending"})
	if err != nil {
		t.Fatalf("unknown context must not error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("expected empty non-nil rail, got %v", out)
	}
}

func TestRecommendHomepagePreservesFetchOrder(t *testing.T) {
	// The homepage rail is presentation-only: fetch order is the final order
	// and no compatibility score is attached.
	pool := &fakeRecPool{topRated: []models.Candidate{
		recCandidate("ms-1", fp(4.9)),
		recCandidate("ms-2", fp(4.7)),
		recCandidate("ms-3", fp(4.5)),
	}}
	svc := NewRecommendationService(pool, &fakeProfiles{}, nil)

	out, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{Context: ContextHomepage, Limit: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 mentors, got %d", len(out))
	}
	if out[0].MentorSkill.ID != "ms-1" || out[1].MentorSkill.ID != "ms-2" {
		t.Error("homepage rail must preserve fetch order")
	}
	for _, m := range out {
		if m.PreferenceScore != 0 {
			t.Error("homepage rail must not attach any score")
		}
	}
}

func TestRecommendHomepageExclusions(t *testing.T) {
	pool := &fakeRecPool{topRated: []models.Candidate{
		recCandidate("ms-1", fp(4.9)),
		recCandidate("ms-2", fp(4.7)),
		recCandidate("ms-3", fp(4.5)),
	}}
	svc := NewRecommendationService(pool, &fakeProfiles{}, nil)

	out, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{
		Context:    ContextHomepage,
		Limit:      2,
		ExcludeIDs: []string{"ms-1"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0].MentorSkill.ID != "ms-2" || out[1].MentorSkill.ID != "ms-3" {
		t.Errorf("expected ms-2 and ms-3 after exclusion, got %d mentors", len(out))
	}
}

func TestRecommendSearchOrdersByPreference(t *testing.T) {
	stanford := recCandidate("ms-stanford", fp(3.0))
	stanford.Profile.University = "Stanford"
	mit := recCandidate("ms-mit", fp(5.0))
	mit.Profile.University = "MIT"

	pool := &fakeRecPool{verified: []models.Candidate{mit, stanford}}
	svc := NewRecommendationService(pool, &fakeProfiles{}, nil)

	out, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{
		Context: ContextSearch,
		Preferences: &models.RecommendationPreferences{
			TargetUniversities: []string{"Stanford"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].MentorSkill.ID != "ms-stanford" {
		t.Errorf("expected preference match first, got %s", out[0].MentorSkill.ID)
	}
	if out[0].PreferenceScore != 1 || out[1].PreferenceScore != 0 {
		t.Errorf("unexpected preference scores: %d %d", out[0].PreferenceScore, out[1].PreferenceScore)
	}
}

func TestRecommendProfileFallsBackWithoutBackground(t *testing.T) {
	pool := &fakeRecPool{topRated: []models.Candidate{recCandidate("ms-1", fp(4.9))}}

	t.Run("no profile on file", func(t *testing.T) {
		p := &fakeRecPool{topRated: pool.topRated}
		svc := NewRecommendationService(p, &fakeProfiles{profile: nil}, nil)
		out, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{Context: ContextProfile})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.topRatedCalls != 1 || p.bgCalls != 0 {
			t.Error("expected fallback to the homepage rail")
		}
		if len(out) != 1 {
			t.Errorf("expected 1 mentor, got %d", len(out))
		}
	})

	t.Run("empty background fields", func(t *testing.T) {
		p := &fakeRecPool{topRated: pool.topRated}
		svc := NewRecommendationService(p, &fakeProfiles{profile: &models.MentorProfile{}}, nil)
		if _, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{Context: ContextProfile}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.topRatedCalls != 1 || p.bgCalls != 0 {
			t.Error("expected fallback to the homepage rail")
		}
	})

	t.Run("background present", func(t *testing.T) {
		p := &fakeRecPool{byBg: []models.Candidate{recCandidate("ms-peer", fp(4.0))}}
		svc := NewRecommendationService(p, &fakeProfiles{profile: &models.MentorProfile{University: "Stanford"}}, nil)
		out, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{Context: ContextProfile})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.bgCalls != 1 || p.topRatedCalls != 0 {
			t.Error("expected the background pool, not the homepage fallback")
		}
		if len(out) != 1 || out[0].MentorSkill.ID != "ms-peer" {
			t.Errorf("unexpected rail contents: %d mentors", len(out))
		}
	})
}

func TestRecommendServiceCategoryFallsBackWithoutCategory(t *testing.T) {
	p := &fakeRecPool{topRated: []models.Candidate{recCandidate("ms-1", fp(4.9))}}
	svc := NewRecommendationService(p, &fakeProfiles{}, nil)
	if _, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{Context: ContextService}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.topRatedCalls != 1 || p.catCalls != 0 {
		t.Error("expected fallback to the homepage rail")
	}

	p = &fakeRecPool{byCat: []models.Candidate{recCandidate("ms-cat", fp(4.0))}}
	svc = NewRecommendationService(p, &fakeProfiles{}, nil)
	out, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{
		Context:     ContextService,
		Preferences: &models.RecommendationPreferences{ServiceCategory: "essay-review"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.catCalls != 1 {
		t.Error("expected the category pool to be queried")
	}
	if len(out) != 1 || out[0].MentorSkill.ID != "ms-cat" {
		t.Errorf("unexpected rail contents: %d mentors", len(out))
	}
}

func TestRecommendPoolFailure(t *testing.T) {
	p := &fakeRecPool{err: errors.New("connection refused")}
	svc := NewRecommendationService(p, &fakeProfiles{}, nil)
	_, err := svc.Recommend(context.Background(), "user-1", &models.RecommendationRequest{Context: ContextHomepage})
	if !errors.Is(err, ErrPoolUnavailable) {
		t.Errorf("expected ErrPoolUnavailable, got %v", err)
	}
}
