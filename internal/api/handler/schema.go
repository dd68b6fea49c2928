package handler

import "github.com/hbnb/rental-directory/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---
//
// String fields are left to the domain validators so clients see the same
// messages whichever entry point they use. Numeric fields are pointers so a
// missing value is distinguishable from zero.

type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
}

func (r createUserRequest) input() domain.UserInput {
	return domain.UserInput{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email, IsAdmin: r.IsAdmin}
}

// updateUserRequest has no is_admin: the flag cannot change after creation.
type updateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
}

func (r updateUserRequest) patch() domain.UserPatch {
	return domain.UserPatch{FirstName: r.FirstName, LastName: r.LastName, Email: r.Email}
}

type amenityRequest struct {
	Name string `json:"name"`
}

type updateAmenityRequest struct {
	Name *string `json:"name"`
}

type createPlaceRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"     validate:"required"`
	Latitude    *float64 `json:"latitude"  validate:"required"`
	Longitude   *float64 `json:"longitude" validate:"required"`
	OwnerID     string   `json:"owner_id"`
	Amenities   []string `json:"amenities"`
}

func (r createPlaceRequest) input() domain.PlaceInput {
	return domain.PlaceInput{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Latitude:    *r.Latitude,
		Longitude:   *r.Longitude,
		OwnerID:     r.OwnerID,
		AmenityIDs:  r.Amenities,
	}
}

// updatePlaceRequest omits reviews: the back-references belong to the facade.
type updatePlaceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	OwnerID     *string   `json:"owner_id"`
	Amenities   *[]string `json:"amenities"`
}

func (r updatePlaceRequest) patch() domain.PlacePatch {
	return domain.PlacePatch{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		OwnerID:     r.OwnerID,
		AmenityIDs:  r.Amenities,
	}
}

type createReviewRequest struct {
	Text    string `json:"text"`
	Rating  *int   `json:"rating" validate:"required"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

func (r createReviewRequest) input() domain.ReviewInput {
	return domain.ReviewInput{Text: r.Text, Rating: *r.Rating, UserID: r.UserID, PlaceID: r.PlaceID}
}

// updateReviewRequest covers text and rating; place and author are fixed.
type updateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

func (r updateReviewRequest) patch() domain.ReviewPatch {
	return domain.ReviewPatch{Text: r.Text, Rating: r.Rating}
}
