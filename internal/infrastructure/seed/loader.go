package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hbnb/rental-directory/internal/core/domain"
	"github.com/hbnb/rental-directory/internal/core/ports"
)

// Error locates a failing fixture entry, e.g. "seed.yaml: places[1]: Owner not found".
type Error struct {
	Path    string
	Section string
	Index   int
	Err     error
}

func (e *Error) Error() string {
	loc := fmt.Sprintf("%s[%d]", e.Section, e.Index)
	if e.Path != "" {
		loc = e.Path + ": " + loc
	}
	return loc + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// LoadFile reads and decodes a fixture file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	f, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("seed: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes fixture YAML. An empty document yields an empty File.
func Parse(b []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &f, nil
}

// Apply creates every fixture entry through the facade, so seeded data
// passes the same validation as API writes. It stops at the first failure
// and returns how many entities were created.
func Apply(ctx context.Context, facade ports.Facade, f *File) (ports.Stats, error) {
	var stats ports.Stats

	userIDs := make(map[string]string, len(f.Users))
	for i, in := range f.Users {
		if _, dup := userIDs[in.Email]; dup {
			return stats, &Error{Section: "users", Index: i, Err: fmt.Errorf("duplicate email %q", in.Email)}
		}
		u, err := facade.CreateUser(ctx, domain.UserInput{
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Email:     in.Email,
			IsAdmin:   in.IsAdmin,
		})
		if err != nil {
			return stats, &Error{Section: "users", Index: i, Err: err}
		}
		userIDs[in.Email] = u.EntityID()
		stats.Users++
	}

	amenityIDs := make(map[string]string, len(f.Amenities))
	for i, in := range f.Amenities {
		if _, dup := amenityIDs[in.Name]; dup {
			return stats, &Error{Section: "amenities", Index: i, Err: fmt.Errorf("duplicate name %q", in.Name)}
		}
		a, err := facade.CreateAmenity(ctx, domain.AmenityInput{Name: in.Name})
		if err != nil {
			return stats, &Error{Section: "amenities", Index: i, Err: err}
		}
		amenityIDs[in.Name] = a.EntityID()
		stats.Amenities++
	}

	placeIDs := make(map[string]string, len(f.Places))
	for i, in := range f.Places {
		if _, dup := placeIDs[in.Title]; dup {
			return stats, &Error{Section: "places", Index: i, Err: fmt.Errorf("duplicate title %q", in.Title)}
		}
		ownerID, ok := userIDs[in.Owner]
		if !ok {
			return stats, &Error{Section: "places", Index: i, Err: fmt.Errorf("owner: unknown user %q", in.Owner)}
		}
		ids := make([]string, 0, len(in.Amenities))
		for _, name := range in.Amenities {
			id, ok := amenityIDs[name]
			if !ok {
				return stats, &Error{Section: "places", Index: i, Err: fmt.Errorf("amenities: unknown amenity %q", name)}
			}
			ids = append(ids, id)
		}
		p, err := facade.CreatePlace(ctx, domain.PlaceInput{
			Title:       in.Title,
			Description: in.Description,
			Price:       in.Price,
			Latitude:    in.Latitude,
			Longitude:   in.Longitude,
			OwnerID:     ownerID,
			AmenityIDs:  ids,
		})
		if err != nil {
			return stats, &Error{Section: "places", Index: i, Err: err}
		}
		placeIDs[in.Title] = p.EntityID()
		stats.Places++
	}

	for i, in := range f.Reviews {
		userID, ok := userIDs[in.User]
		if !ok {
			return stats, &Error{Section: "reviews", Index: i, Err: fmt.Errorf("user: unknown user %q", in.User)}
		}
		placeID, ok := placeIDs[in.Place]
		if !ok {
			return stats, &Error{Section: "reviews", Index: i, Err: fmt.Errorf("place: unknown place %q", in.Place)}
		}
		if _, err := facade.CreateReview(ctx, domain.ReviewInput{
			Text:    in.Text,
			Rating:  in.Rating,
			UserID:  userID,
			PlaceID: placeID,
		}); err != nil {
			return stats, &Error{Section: "reviews", Index: i, Err: err}
		}
		stats.Reviews++
	}

	return stats, nil
}

// ApplyFile loads path and applies it, tagging errors with the file name.
func ApplyFile(ctx context.Context, facade ports.Facade, path string) (ports.Stats, error) {
	f, err := LoadFile(path)
	if err != nil {
		return ports.Stats{}, err
	}
	stats, err := Apply(ctx, facade, f)
	var se *Error
	if errors.As(err, &se) {
		se.Path = path
	}
	return stats, err
}
