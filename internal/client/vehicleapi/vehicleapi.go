// Package vehicleapi wraps the vehicle listing, detail and temp-data
// endpoints. These are plain REST calls with no shared state; the only
// client-side policy is a rate limit on temp-data creation, since every
// call mints a short-lived record server-side.
package vehicleapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/eprometna/client-go/internal/client/domain"
	"github.com/eprometna/client-go/pkg/apix"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// ErrInvalidVehicleID reports a vehicle identifier that is not a UUID. The
// check runs before any request is built so malformed input never reaches
// the wire as a path segment.
var ErrInvalidVehicleID = errors.New("vehicleapi: vehicle id is not a valid uuid")

// ErrTempDataThrottled reports that temp-data creation exceeded the local
// rate limit.
var ErrTempDataThrottled = errors.New("vehicleapi: temp data creation throttled")

// Temp-data creation limit: QR codes are short-lived, regenerating more
// than a few per minute only litters the server with orphaned records.
const (
	tempDataPerMinute = 10
	tempDataBurst     = 3
)

type Service struct {
	Client *apix.Client // authenticated

	limiter *rate.Limiter
}

func NewService(client *apix.Client) *Service {
	return &Service{
		Client:  client,
		limiter: rate.NewLimiter(rate.Limit(tempDataPerMinute)/60, tempDataBurst),
	}
}

// GetMyVehicles lists the vehicles registered to the logged-in user.
func (s *Service) GetMyVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	var vehicles []domain.Vehicle
	if err := s.Client.Get(ctx, "/vehicle/", &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetVehicleDetails fetches the full record for one vehicle.
func (s *Service) GetVehicleDetails(ctx context.Context, vehicleUUID string) (*domain.VehicleDetails, error) {
	if _, err := uuid.Parse(vehicleUUID); err != nil {
		return nil, ErrInvalidVehicleID
	}

	var details domain.VehicleDetails
	if err := s.Client.Get(ctx, fmt.Sprintf("/vehicle/%s", vehicleUUID), &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// CreateTempData asks the server to mint a short-lived record referencing
// the vehicle and returns the reference string a QR code encodes.
func (s *Service) CreateTempData(ctx context.Context, vehicleUUID string) (string, error) {
	if _, err := uuid.Parse(vehicleUUID); err != nil {
		return "", ErrInvalidVehicleID
	}

	if !s.limiter.Allow() {
		return "", ErrTempDataThrottled
	}

	var ref string
	if err := s.Client.Post(ctx, fmt.Sprintf("/tempdata/%s", vehicleUUID), nil, &ref); err != nil {
		return "", err
	}
	return ref, nil
}
