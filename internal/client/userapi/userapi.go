// Package userapi wraps the profile endpoint consumed by the session store.
package userapi

import (
	"context"

	"github.com/eprometna/client-go/internal/client/domain"
	"github.com/eprometna/client-go/pkg/apix"
)

type Service struct {
	Client *apix.Client // authenticated
}

// GetLoggedInUser fetches the full profile of the user the current bearer
// credential belongs to.
func (s *Service) GetLoggedInUser(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := s.Client.Get(ctx, "/user/my-data", &user); err != nil {
		return nil, err
	}
	return &user, nil
}
