package domain

// ReviewPolicy configures review rules that vary between deployments.
type ReviewPolicy struct {
	// TextMax caps review text length in characters; 0 disables the cap.
	TextMax int
}

// DefaultReviewPolicy caps review text at DefaultReviewTextMax characters.
func DefaultReviewPolicy() ReviewPolicy {
	return ReviewPolicy{TextMax: DefaultReviewTextMax}
}

// Review is a user's rating of a place. The policy it was created under
// stays with it so later edits are held to the same text cap.
type Review struct {
	base
	text    string
	rating  int
	placeID string
	userID  string
	policy  ReviewPolicy
}

type ReviewInput struct {
	Text    string
	Rating  int
	PlaceID string
	UserID  string
}

// ReviewPatch lists the mutable review fields. The place and author of a
// review are fixed once it exists.
type ReviewPatch struct {
	Text   *string
	Rating *int
}

type ReviewView struct {
	Meta
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
}

func NewReview(in ReviewInput, policy ReviewPolicy) (*Review, error) {
	if err := firstError(
		ValidateReviewText(in.Text, policy.TextMax),
		ValidateRating(in.Rating),
		ValidateReference("place_id", in.PlaceID),
		ValidateReference("user_id", in.UserID),
	); err != nil {
		return nil, err
	}
	return &Review{
		base:    newBase(),
		text:    in.Text,
		rating:  in.Rating,
		placeID: in.PlaceID,
		userID:  in.UserID,
		policy:  policy,
	}, nil
}

func (r *Review) Text() string { return r.text }
func (r *Review) Rating() int { return r.rating }
func (r *Review) PlaceID() string { return r.placeID }
func (r *Review) UserID() string { return r.userID }

func (r *Review) Apply(p ReviewPatch) error {
	var checks []error
	if p.Text != nil {
		checks = append(checks, ValidateReviewText(*p.Text, r.policy.TextMax))
	}
	if p.Rating != nil {
		checks = append(checks, ValidateRating(*p.Rating))
	}
	if err := firstError(checks...); err != nil {
		return err
	}
	if len(checks) == 0 {
		return nil
	}

	if p.Text != nil {
		r.text = *p.Text
	}
	if p.Rating != nil {
		r.rating = *p.Rating
	}
	r.touch()
	return nil
}

func (r *Review) Attribute(name string) (any, bool) {
	switch name {
	case "text":
		return r.text, true
	case "rating":
		return r.rating, true
	case "place_id":
		return r.placeID, true
	case "user_id":
		return r.userID, true
	}
	return r.attribute(name)
}

func (r *Review) Clone() *Review {
	c := *r
	return &c
}

func (r *Review) View() ReviewView {
	return ReviewView{
		Meta:    r.meta(),
		Text:    r.text,
		Rating:  r.rating,
		PlaceID: r.placeID,
		UserID:  r.userID,
	}
}
