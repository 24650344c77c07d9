package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/prateeksteaparty/vital-wellness/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDigestEmptyUser(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewDigestService(db)

	digest, err := svc.BuildDigest(user.ID)
	require.NoError(t, err)
	assert.Nil(t, digest, "no saves means nothing to send")
}

func TestBuildDigestUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewDigestService(db)

	_, err := svc.BuildDigest(12345)
	assert.Error(t, err)
}

func TestBuildDigestTakesFiveNewest(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewDigestService(db)

	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 7; i++ {
		rec := &models.SavedRecommendation{
			UserID:       user.ID,
			NutrientName: fmt.Sprintf("Nutrient%d", i),
			Confidence:   float64(50 + i),
		}
		rec.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, db.Create(rec).Error)
	}

	digest, err := svc.BuildDigest(user.ID)
	require.NoError(t, err)
	require.NotNil(t, digest)
	assert.Equal(t, user.Email, digest.To)
	assert.Equal(t, "Your Vital Wellness Summary & Food Guide", digest.Subject)

	// Newest five only, descending.
	for i := 3; i <= 7; i++ {
		assert.Contains(t, digest.HTML, fmt.Sprintf("Nutrient%d", i))
	}
	assert.NotContains(t, digest.HTML, "Nutrient1")
	assert.NotContains(t, digest.HTML, "Nutrient2")

	pos7 := strings.Index(digest.HTML, "Nutrient7")
	pos3 := strings.Index(digest.HTML, "Nutrient3")
	assert.Less(t, pos7, pos3, "newest recommendation should render first")
}

func TestBuildDigestFormatting(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	svc := NewDigestService(db)

	rec := &models.SavedRecommendation{
		UserID:       user.ID,
		NutrientName: "Vitamin D",
		Confidence:   91.6,
		FoodSources:  "salmon, egg yolk",
		Description:  "",
	}
	require.NoError(t, db.Create(rec).Error)

	digest, err := svc.BuildDigest(user.ID)
	require.NoError(t, err)
	require.NotNil(t, digest)

	assert.Contains(t, digest.HTML, "(92% confidence)", "confidence rounds to nearest integer")
	assert.Contains(t, digest.HTML, "Supports overall wellness.", "empty description falls back to the generic sentence")
	assert.Contains(t, digest.HTML, "salmon, egg yolk")
	assert.Contains(t, digest.HTML, "Hi Asha")
	assert.Contains(t, digest.HTML, "nuts, dairy")
}

func TestBuildDigestNoAllergies(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db)
	require.NoError(t, db.Model(user).Update("allergies", "").Error)

	rec := &models.SavedRecommendation{UserID: user.ID, NutrientName: "Iron", Confidence: 70}
	require.NoError(t, db.Create(rec).Error)

	digest, err := NewDigestService(db).BuildDigest(user.ID)
	require.NoError(t, err)
	require.NotNil(t, digest)
	assert.Contains(t, digest.HTML, "<strong>Allergies:</strong> None")
}
