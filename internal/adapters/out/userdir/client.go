// Package userdir implements the role directory port against the user
// service's REST API. The user service owns accounts, roles, and
// employee-to-restaurant affiliations; this client only reads them.
package userdir

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"foodcourt/internal/core/domain/model/actor"
	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client resolves user roles and employee affiliations over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a role directory client for the user service at baseURL.
func NewClient(baseURL string) (*Client, error) {
	if baseURL == "" {
		return nil, errs.NewValueIsRequiredError("baseURL")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseURL", err)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}, nil
}

type roleResponse struct {
	Role string `json:"role"`
}

type affiliationResponse struct {
	RestaurantID string `json:"restaurant_id"`
}

// RoleByUserID resolves the role a user holds. An unknown user yields a
// not-found error; an unreachable directory a dependency failure.
func (c *Client) RoleByUserID(ctx context.Context, userID kernel.UUID) (actor.Role, error) {
	if err := userID.Validate(); err != nil {
		return actor.UnknownRole, err
	}

	endpoint := fmt.Sprintf("%s/api/v1/users/%s/role", c.baseURL, userID.String())

	var payload roleResponse
	if err := c.getJSON(ctx, endpoint, "user id", userID, &payload); err != nil {
		return actor.UnknownRole, err
	}

	role, err := actor.RoleFromString(payload.Role)
	if err != nil {
		return actor.UnknownRole, errs.NewDependencyFailureErrorWithCause("user directory", err)
	}

	return role, nil
}

// RestaurantByEmployee resolves the restaurant an employee is affiliated with.
// An employee without an affiliation yields a not-found error.
func (c *Client) RestaurantByEmployee(ctx context.Context, userID kernel.UUID) (kernel.UUID, error) {
	if err := userID.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	endpoint := fmt.Sprintf("%s/api/v1/employees/%s/restaurant", c.baseURL, userID.String())

	var payload affiliationResponse
	if err := c.getJSON(ctx, endpoint, "employee id", userID, &payload); err != nil {
		return kernel.UUID{}, err
	}

	restaurantID, err := kernel.UUIDFromString(payload.RestaurantID)
	if err != nil {
		return kernel.UUID{}, errs.NewDependencyFailureErrorWithCause("user directory", err)
	}

	return restaurantID, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint, paramName string, id kernel.UUID, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errs.NewDependencyFailureErrorWithCause("user directory", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.NewDependencyFailureErrorWithCause("user directory", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return errs.NewObjectNotFoundError(paramName, id)
	case resp.StatusCode != http.StatusOK:
		return errs.NewDependencyFailureErrorWithCause("user directory",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.NewDependencyFailureErrorWithCause("user directory", err)
	}

	if err = json.Unmarshal(body, out); err != nil {
		return errs.NewDependencyFailureErrorWithCause("user directory", err)
	}

	return nil
}
