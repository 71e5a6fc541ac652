package faceapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const personGroupsPath = "persongroups"

// DefaultTrainingPollInterval is used by WaitForTraining when no positive
// interval is given.
const DefaultTrainingPollInterval = time.Second

// CreatePersonGroup creates a person group with the caller-chosen id. The id
// charset and length are checked by the service, not here.
func (c *Client) CreatePersonGroup(ctx context.Context, personGroupID, name, userData string) error {
	return doRequestRaw(ctx, c, http.MethodPut, personGroupsPath+"/"+personGroupID, nameUserData{Name: name, UserData: userData})
}

// DeletePersonGroup deletes a person group together with all its persons and faces.
func (c *Client) DeletePersonGroup(ctx context.Context, personGroupID string) error {
	return doRequestRaw(ctx, c, http.MethodDelete, personGroupsPath+"/"+personGroupID, nil)
}

// GetPersonGroup retrieves a person group's name and user data.
func (c *Client) GetPersonGroup(ctx context.Context, personGroupID string) (*PersonGroup, error) {
	return doGetJSON[PersonGroup](ctx, c, personGroupsPath+"/"+personGroupID)
}

// GetPersonGroupTrainingStatus retrieves the state of the group's training job.
func (c *Client) GetPersonGroupTrainingStatus(ctx context.Context, personGroupID string) (*TrainingStatus, error) {
	return doGetJSON[TrainingStatus](ctx, c, personGroupsPath+"/"+personGroupID+"/training")
}

// ListPersonGroups lists person groups ordered by id, starting after opts.Start.
func (c *Client) ListPersonGroups(ctx context.Context, opts ListOptions) ([]PersonGroup, error) {
	endpoint := fmt.Sprintf("%s?start=%s&top=%d", personGroupsPath, url.QueryEscape(opts.Start), opts.top())
	result, err := doGetJSON[[]PersonGroup](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	if *result == nil {
		return []PersonGroup{}, nil
	}
	return *result, nil
}

// TrainPersonGroup queues a training job. It returns once the job is queued;
// use GetPersonGroupTrainingStatus or WaitForTraining to observe completion.
func (c *Client) TrainPersonGroup(ctx context.Context, personGroupID string) error {
	return doRequestRaw(ctx, c, http.MethodPost, personGroupsPath+"/"+personGroupID+"/train", nil)
}

// UpdatePersonGroup updates the group's name and user data. Both fields are
// always sent, unset ones as "".
func (c *Client) UpdatePersonGroup(ctx context.Context, personGroupID string, update PersonGroupUpdate) error {
	return doRequestRaw(ctx, c, http.MethodPatch, personGroupsPath+"/"+personGroupID, update)
}

// WaitForTraining polls the training status every interval until training
// succeeds, fails, or ctx is done. A non-positive interval falls back to
// DefaultTrainingPollInterval.
func (c *Client) WaitForTraining(ctx context.Context, personGroupID string, interval time.Duration) (*TrainingStatus, error) {
	if interval <= 0 {
		interval = DefaultTrainingPollInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		status, err := c.GetPersonGroupTrainingStatus(ctx, personGroupID)
		if err != nil {
			return nil, err
		}
		switch status.Status {
		case TrainingSucceeded:
			return status, nil
		case TrainingFailed:
			return status, &TrainingFailedError{GroupID: personGroupID, Message: status.Message}
		}
		c.logger.Debug("training in progress", zap.String("person_group_id", personGroupID), zap.String("status", status.Status))

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-ticker.C:
		}
	}
}
