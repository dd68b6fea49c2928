package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int { return &i }
func slicePtr(s []string) *[]string { return &s }

func validPlaceInput() PlaceInput {
	return PlaceInput{
		Title:       "Cozy Apartment",
		Description: "A nice place to stay",
		Price:       100,
		Latitude:    37.7749,
		Longitude:   -122.4194,
		OwnerID:     "owner-1",
	}
}

// ---------------------------------------------------------------------------
// User
// ---------------------------------------------------------------------------

func TestNewUser_StoresInputs(t *testing.T) {
	u, err := NewUser(UserInput{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"})
	require.NoError(t, err)

	assert.NotEmpty(t, u.EntityID())
	assert.Equal(t, "John", u.FirstName())
	assert.Equal(t, "Doe", u.LastName())
	assert.Equal(t, "john.doe@example.com", u.Email())
	assert.False(t, u.IsAdmin())
	assert.Equal(t, u.Created(), u.Updated())
}

func TestNewUser_AdminFlag(t *testing.T) {
	u, err := NewUser(UserInput{FirstName: "Ada", LastName: "Root", Email: "ada@example.com", IsAdmin: true})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}

func TestNewUser_Invalid(t *testing.T) {
	cases := map[string]struct {
		in    UserInput
		field string
	}{
		"empty first name":    {UserInput{FirstName: "", LastName: "Doe", Email: "j@example.com"}, "first_name"},
		"first name too long": {UserInput{FirstName: strings.Repeat("A", 51), LastName: "Doe", Email: "j@example.com"}, "first_name"},
		"empty last name":     {UserInput{FirstName: "John", LastName: "", Email: "j@example.com"}, "last_name"},
		"last name too long":  {UserInput{FirstName: "John", LastName: strings.Repeat("B", 51), Email: "j@example.com"}, "last_name"},
		"missing at":          {UserInput{FirstName: "John", LastName: "Doe", Email: "not-an-email"}, "email"},
		"missing tld":         {UserInput{FirstName: "John", LastName: "Doe", Email: "john@example"}, "email"},
		"empty email":         {UserInput{FirstName: "John", LastName: "Doe", Email: ""}, "email"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			u, err := NewUser(tc.in)
			assert.Nil(t, u)
			require.ErrorIs(t, err, ErrValidation)

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tc.field, ve.Field)
		})
	}
}

func TestNewUser_NameBoundary(t *testing.T) {
	_, err := NewUser(UserInput{FirstName: strings.Repeat("A", 50), LastName: strings.Repeat("B", 50), Email: "a@b.co"})
	assert.NoError(t, err)
}

func TestUserApply_UpdatesAndTouches(t *testing.T) {
	u, err := NewUser(UserInput{FirstName: "Old", LastName: "Name", Email: "old@example.com"})
	require.NoError(t, err)
	before := u.Updated()

	require.NoError(t, u.Apply(UserPatch{FirstName: strPtr("New")}))
	assert.Equal(t, "New", u.FirstName())
	assert.Equal(t, "Name", u.LastName())
	assert.False(t, u.Updated().Before(before))
}

func TestUserApply_AllOrNothing(t *testing.T) {
	u, err := NewUser(UserInput{FirstName: "Keep", LastName: "Me", Email: "keep@example.com"})
	require.NoError(t, err)
	before := u.Updated()

	err = u.Apply(UserPatch{FirstName: strPtr("Changed"), Email: strPtr("bad-email")})
	require.ErrorIs(t, err, ErrValidation)

	assert.Equal(t, "Keep", u.FirstName())
	assert.Equal(t, "keep@example.com", u.Email())
	assert.Equal(t, before, u.Updated())
}

func TestUserAttribute(t *testing.T) {
	u, err := NewUser(UserInput{FirstName: "John", LastName: "Doe", Email: "john@example.com"})
	require.NoError(t, err)

	v, ok := u.Attribute("email")
	require.True(t, ok)
	assert.Equal(t, "john@example.com", v)

	v, ok = u.Attribute("id")
	require.True(t, ok)
	assert.Equal(t, u.EntityID(), v)

	_, ok = u.Attribute("password")
	assert.False(t, ok)
}

// ---------------------------------------------------------------------------
// Amenity
// ---------------------------------------------------------------------------

func TestNewAmenity(t *testing.T) {
	a, err := NewAmenity(AmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", a.Name())

	_, err = NewAmenity(AmenityInput{Name: ""})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAmenity(AmenityInput{Name: strings.Repeat("A", 51)})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAmenityApply_RejectsEmptyName(t *testing.T) {
	a, err := NewAmenity(AmenityInput{Name: "Pool"})
	require.NoError(t, err)

	require.ErrorIs(t, a.Apply(AmenityPatch{Name: strPtr("")}), ErrValidation)
	assert.Equal(t, "Pool", a.Name())

	require.NoError(t, a.Apply(AmenityPatch{Name: strPtr("Sauna")}))
	assert.Equal(t, "Sauna", a.Name())
}

// ---------------------------------------------------------------------------
// Place
// ---------------------------------------------------------------------------

func TestNewPlace_StoresInputs(t *testing.T) {
	in := validPlaceInput()
	in.AmenityIDs = []string{"a1", "a2", "a1"}

	p, err := NewPlace(in)
	require.NoError(t, err)

	assert.Equal(t, "Cozy Apartment", p.Title())
	assert.Equal(t, 100.0, p.Price())
	assert.Equal(t, 37.7749, p.Latitude())
	assert.Equal(t, -122.4194, p.Longitude())
	assert.Equal(t, "owner-1", p.OwnerID())
	assert.Equal(t, []string{"a1", "a2"}, p.AmenityIDs())
	assert.Empty(t, p.ReviewIDs())
}

func TestNewPlace_PriceBoundary(t *testing.T) {
	in := validPlaceInput()
	in.Price = 0
	_, err := NewPlace(in)
	assert.NoError(t, err)

	in.Price = -10
	_, err = NewPlace(in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNewPlace_Invalid(t *testing.T) {
	cases := map[string]func(*PlaceInput){
		"empty title":      func(in *PlaceInput) { in.Title = "" },
		"title too long":   func(in *PlaceInput) { in.Title = strings.Repeat("T", 101) },
		"latitude high":    func(in *PlaceInput) { in.Latitude = 91 },
		"latitude low":     func(in *PlaceInput) { in.Latitude = -90.5 },
		"longitude high":   func(in *PlaceInput) { in.Longitude = 181 },
		"longitude low":    func(in *PlaceInput) { in.Longitude = -180.1 },
		"missing owner":    func(in *PlaceInput) { in.OwnerID = "" },
		"blank amenity id": func(in *PlaceInput) { in.AmenityIDs = []string{"a1", ""} },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validPlaceInput()
			mutate(&in)
			p, err := NewPlace(in)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestNewPlace_CoordinateBoundaries(t *testing.T) {
	for _, c := range [][2]float64{{90, 180}, {-90, -180}, {0, 0}} {
		in := validPlaceInput()
		in.Latitude, in.Longitude = c[0], c[1]
		_, err := NewPlace(in)
		assert.NoError(t, err, "lat=%v lng=%v", c[0], c[1])
	}
}

func TestPlaceApply_AllOrNothing(t *testing.T) {
	p, err := NewPlace(validPlaceInput())
	require.NoError(t, err)

	err = p.Apply(PlacePatch{Title: strPtr("Updated"), Price: floatPtr(-5)})
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Cozy Apartment", p.Title())
	assert.Equal(t, 100.0, p.Price())

	require.NoError(t, p.Apply(PlacePatch{
		Title:       strPtr("Updated"),
		Description: strPtr(""),
		AmenityIDs:  slicePtr([]string{"x", "x", "y"}),
	}))
	assert.Equal(t, "Updated", p.Title())
	assert.Equal(t, "", p.Description())
	assert.Equal(t, []string{"x", "y"}, p.AmenityIDs())
}

func TestPlacePatch_TouchesReferences(t *testing.T) {
	assert.False(t, PlacePatch{Title: strPtr("x")}.TouchesReferences())
	assert.True(t, PlacePatch{OwnerID: strPtr("u")}.TouchesReferences())
	assert.True(t, PlacePatch{AmenityIDs: slicePtr(nil)}.TouchesReferences())
}

func TestPlaceReviews_BackReferences(t *testing.T) {
	p, err := NewPlace(validPlaceInput())
	require.NoError(t, err)

	p.AddReview("r1")
	p.AddReview("r2")
	p.AddReview("r1")
	assert.Equal(t, []string{"r1", "r2"}, p.ReviewIDs())

	assert.True(t, p.RemoveReview("r1"))
	assert.False(t, p.RemoveReview("r1"))
	assert.Equal(t, []string{"r2"}, p.ReviewIDs())
}

func TestPlaceClone_IsIndependent(t *testing.T) {
	p, err := NewPlace(validPlaceInput())
	require.NoError(t, err)
	p.AddReview("r1")

	c := p.Clone()
	c.AddReview("r2")
	require.NoError(t, c.Apply(PlacePatch{Title: strPtr("Other")}))

	assert.Equal(t, []string{"r1"}, p.ReviewIDs())
	assert.Equal(t, "Cozy Apartment", p.Title())
}

func TestPlaceExpand(t *testing.T) {
	owner, err := NewUser(UserInput{FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"})
	require.NoError(t, err)
	wifi, err := NewAmenity(AmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)

	in := validPlaceInput()
	in.OwnerID = owner.EntityID()
	in.AmenityIDs = []string{wifi.EntityID()}
	p, err := NewPlace(in)
	require.NoError(t, err)

	r, err := NewReview(ReviewInput{Text: "Great stay!", Rating: 5, PlaceID: p.EntityID(), UserID: owner.EntityID()}, DefaultReviewPolicy())
	require.NoError(t, err)

	d := p.Expand(owner, []*Amenity{wifi}, []*Review{r})
	require.NotNil(t, d.Owner)
	assert.Equal(t, owner.EntityID(), d.Owner.ID)
	require.Len(t, d.Amenities, 1)
	assert.Equal(t, "Wi-Fi", d.Amenities[0].Name)
	require.Len(t, d.Reviews, 1)
	assert.Equal(t, 5, d.Reviews[0].Rating)

	orphan := p.Expand(nil, nil, nil)
	assert.Nil(t, orphan.Owner)
	assert.NotNil(t, orphan.Amenities)
	assert.NotNil(t, orphan.Reviews)
}

// ---------------------------------------------------------------------------
// Review
// ---------------------------------------------------------------------------

func TestNewReview(t *testing.T) {
	r, err := NewReview(ReviewInput{Text: "Amazing!", Rating: 5, PlaceID: "pid", UserID: "uid"}, DefaultReviewPolicy())
	require.NoError(t, err)
	assert.Equal(t, "Amazing!", r.Text())
	assert.Equal(t, 5, r.Rating())
	assert.Equal(t, "pid", r.PlaceID())
	assert.Equal(t, "uid", r.UserID())
}

func TestNewReview_RatingBounds(t *testing.T) {
	policy := DefaultReviewPolicy()
	for _, rating := range []int{1, 5} {
		_, err := NewReview(ReviewInput{Text: "ok", Rating: rating, PlaceID: "p", UserID: "u"}, policy)
		assert.NoError(t, err, "rating %d", rating)
	}
	for _, rating := range []int{0, 6, -1} {
		_, err := NewReview(ReviewInput{Text: "ok", Rating: rating, PlaceID: "p", UserID: "u"}, policy)
		assert.ErrorIs(t, err, ErrValidation, "rating %d", rating)
	}
}

func TestNewReview_TextRules(t *testing.T) {
	_, err := NewReview(ReviewInput{Text: "", Rating: 3, PlaceID: "p", UserID: "u"}, DefaultReviewPolicy())
	assert.ErrorIs(t, err, ErrValidation)

	long := strings.Repeat("x", DefaultReviewTextMax+1)
	_, err = NewReview(ReviewInput{Text: long, Rating: 3, PlaceID: "p", UserID: "u"}, DefaultReviewPolicy())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview(ReviewInput{Text: long, Rating: 3, PlaceID: "p", UserID: "u"}, ReviewPolicy{})
	assert.NoError(t, err)
}

func TestNewReview_MissingReferences(t *testing.T) {
	_, err := NewReview(ReviewInput{Text: "ok", Rating: 3, UserID: "u"}, DefaultReviewPolicy())
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "place_id", ve.Field)
}

func TestReviewApply_KeepsPolicy(t *testing.T) {
	r, err := NewReview(ReviewInput{Text: "fine", Rating: 3, PlaceID: "p", UserID: "u"}, ReviewPolicy{TextMax: 10})
	require.NoError(t, err)

	require.ErrorIs(t, r.Apply(ReviewPatch{Text: strPtr("far too long for ten")}), ErrValidation)
	require.ErrorIs(t, r.Apply(ReviewPatch{Text: strPtr("short"), Rating: intPtr(10)}), ErrValidation)
	assert.Equal(t, "fine", r.Text())
	assert.Equal(t, 3, r.Rating())

	require.NoError(t, r.Apply(ReviewPatch{Text: strPtr("Updated"), Rating: intPtr(4)}))
	assert.Equal(t, "Updated", r.Text())
	assert.Equal(t, 4, r.Rating())
}

// ---------------------------------------------------------------------------
// Errors
// ---------------------------------------------------------------------------

func TestErrors_Classification(t *testing.T) {
	nf := NewNotFoundError("place", "p-1")
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.NotErrorIs(t, nf, ErrValidation)
	assert.Equal(t, "place not found", nf.Error())

	ve := NewValidationError("owner_id", "Owner not found")
	assert.ErrorIs(t, ve, ErrValidation)
	assert.Equal(t, "owner_id: Owner not found", ve.Error())
}

func TestWhitespaceOnlyCountsAsEmpty(t *testing.T) {
	_, err := NewUser(UserInput{FirstName: "   ", LastName: "Doe", Email: "a@example.com"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewAmenity(AmenityInput{Name: "\t"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewReview(ReviewInput{Text: "  ", Rating: 3, PlaceID: "p", UserID: "u"}, DefaultReviewPolicy())
	assert.ErrorIs(t, err, ErrValidation)

	assert.Error(t, ValidateReference("owner_id", " "))
}
