package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddReviewRejectsDuplicateReviewer(t *testing.T) {
	doc := ProductReview{
		ProductName: "casque",
		Reviews:     []Review{{Name: "Alice", Comments: "Très bon produit", Rating: 5}},
	}

	err := doc.AddReview(Review{Name: "Alice", Comments: "Je change d'avis", Rating: 2})

	require.ErrorIs(t, err, ErrDuplicateReviewer)
	assert.Len(t, doc.Reviews, 1)
	assert.Equal(t, "Très bon produit", doc.Reviews[0].Comments)
}

func TestAddReviewDistinctReviewers(t *testing.T) {
	doc := ProductReview{
		ProductName: "casque",
		Reviews:     []Review{{Name: "Alice", Comments: "Très bon produit", Rating: 5}},
	}

	err := doc.AddReview(Review{Name: "Bob", Comments: "Correct sans plus", Rating: 3})

	require.NoError(t, err)
	assert.Len(t, doc.Reviews, 2)
}
