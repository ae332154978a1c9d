package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bidmart/bidengine/internal/config"
	"github.com/bidmart/bidengine/internal/domain"
	"github.com/bidmart/bidengine/pkg/apperr"
	"github.com/bidmart/bidengine/pkg/clients"
)

const (
	maxRetries    = 3
	retryInterval = time.Second * 1
)

type projectResponse struct {
	Project domain.ProjectSnapshot `json:"project"`
}

// Client talks to the project catalog read model. The engine never owns
// project data; every snapshot frozen into a cart or bid comes from here.
type Client struct {
	url        string
	client     clients.HTTPClientI
	workerPool WorkerPoolI
}

func New(cfg *config.Config, client clients.HTTPClientI) *Client {
	return &Client{
		url:        cfg.CatalogAddress,
		client:     client,
		workerPool: NewWorkerPool(10),
	}
}

// ProjectByID fetches the authoritative snapshot of a single project.
func (c *Client) ProjectByID(ctx context.Context, projectID string) (*domain.ProjectSnapshot, error) {
	url := c.url + "/api/v1/project/" + projectID

	var err error
	var statusCode int
	var respBody []byte
	var respHeaders http.Header

	for attempt := 1; attempt <= maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, apperr.Wrap(ctx.Err(), apperr.KindUnavailable, "catalog request canceled")
		default:
			statusCode, respBody, respHeaders, err = c.client.Get(url, nil)
			if err != nil {
				if attempt < maxRetries {
					time.Sleep(retryInterval * time.Duration(attempt))
					continue
				}
				return nil, apperr.Wrap(err, apperr.KindUnavailable,
					fmt.Sprintf("catalog unreachable after %d retries", maxRetries))
			}

			switch statusCode {
			case http.StatusTooManyRequests:
				c.waitRateLimit(projectID, respHeaders, attempt)
				continue

			case http.StatusNotFound:
				return nil, apperr.Newf(apperr.KindNotFound, "project %s not found", projectID)

			case http.StatusOK:
				return parseProject(projectID, respBody)

			default:
				zap.L().Error("unexpected catalog status code",
					zap.Int("status", statusCode), zap.String("projectID", projectID))
				return nil, apperr.Newf(apperr.KindUnavailable, "unexpected catalog status code %d", statusCode)
			}
		}
	}
	return nil, apperr.Newf(apperr.KindUnavailable, "catalog unavailable for project %s", projectID)
}

// Snapshots fetches authoritative snapshots for all the given project ids,
// preserving input order. Fetches run concurrently through the worker pool;
// the first failure aborts the whole batch.
func (c *Client) Snapshots(ctx context.Context, projectIDs []string) ([]domain.ProjectSnapshot, error) {
	snapshots := make([]domain.ProjectSnapshot, len(projectIDs))

	var g errgroup.Group
	for i, projectID := range projectIDs {
		i, projectID := i, projectID
		g.Go(func() error {
			done := make(chan error, 1)
			if err := c.workerPool.AddTask(ctx, func() error {
				snap, err := c.ProjectByID(ctx, projectID)
				if err == nil {
					snapshots[i] = *snap
				}
				done <- err
				return err
			}); err != nil {
				return err
			}
			return <-done
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}

func parseProject(projectID string, respBody []byte) (*domain.ProjectSnapshot, error) {
	var resp projectResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, apperr.Wrap(err, apperr.KindUnavailable, "can't parse catalog response")
	}
	if resp.Project.ID != projectID {
		return nil, apperr.Newf(apperr.KindUnavailable,
			"project id mismatch: expected %s, got %s", projectID, resp.Project.ID)
	}
	if resp.Project.Price < 0 {
		return nil, apperr.Newf(apperr.KindUnavailable, "catalog served negative price for project %s", projectID)
	}
	return &resp.Project, nil
}

func (c *Client) waitRateLimit(projectID string, respHeaders http.Header, attempt int) {
	retryAfterHeader := respHeaders.Get("Retry-After")
	retryAfter := retryInterval * time.Duration(attempt)

	if retryAfterHeader != "" {
		if seconds, err := strconv.Atoi(retryAfterHeader); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	zap.L().Warn(
		"catalog rate limit detected, retrying",
		zap.String("projectID", projectID),
		zap.Int("attempt", attempt),
		zap.Duration("retryAfter", retryAfter),
	)
	time.Sleep(retryAfter)
}
