package faceapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

func personsPath(personGroupID string) string {
	return personGroupsPath + "/" + personGroupID + "/persons"
}

// CreatePerson creates a person without faces and returns the new person id.
func (c *Client) CreatePerson(ctx context.Context, personGroupID, name, userData string) (string, error) {
	result, err := doPostJSON[createPersonResponse](ctx, c, personsPath(personGroupID), nameUserData{Name: name, UserData: userData})
	if err != nil {
		return "", err
	}
	return result.PersonID, nil
}

// GetPerson retrieves a person and the ids of their persisted faces.
func (c *Client) GetPerson(ctx context.Context, personGroupID, personID string) (*Person, error) {
	return doGetJSON[Person](ctx, c, personsPath(personGroupID)+"/"+personID)
}

// UpdatePerson updates a person's name and user data.
func (c *Client) UpdatePerson(ctx context.Context, personGroupID, personID string, update PersonUpdate) error {
	return doRequestRaw(ctx, c, http.MethodPatch, personsPath(personGroupID)+"/"+personID, update)
}

// DeletePerson deletes a person and their persisted faces.
func (c *Client) DeletePerson(ctx context.Context, personGroupID, personID string) error {
	return doRequestRaw(ctx, c, http.MethodDelete, personsPath(personGroupID)+"/"+personID, nil)
}

// ListPersonsInPersonGroup lists persons in a group, starting after opts.Start.
func (c *Client) ListPersonsInPersonGroup(ctx context.Context, personGroupID string, opts ListOptions) ([]Person, error) {
	endpoint := fmt.Sprintf("%s?start=%s&top=%d", personsPath(personGroupID), url.QueryEscape(opts.Start), opts.top())
	result, err := doGetJSON[[]Person](ctx, c, endpoint)
	if err != nil {
		return nil, err
	}
	if *result == nil {
		return []Person{}, nil
	}
	return *result, nil
}

// AddPersonFace registers the face in the image at imageURL for a person and
// returns the persisted face id. userData is sent as a query parameter only
// when non-empty.
func (c *Client) AddPersonFace(ctx context.Context, personGroupID, personID, userData, imageURL string) (string, error) {
	endpoint := personsPath(personGroupID) + "/" + personID + "/persistedFaces"
	if userData != "" {
		endpoint += "?userData=" + url.QueryEscape(userData)
	}
	result, err := doPostJSON[addFaceResponse](ctx, c, endpoint, imageURLRequest{URL: imageURL})
	if err != nil {
		return "", err
	}
	return result.PersistedFaceID, nil
}

// DeletePersonFace removes a persisted face from a person.
func (c *Client) DeletePersonFace(ctx context.Context, personGroupID, personID, persistedFaceID string) error {
	return doRequestRaw(ctx, c, http.MethodDelete, personsPath(personGroupID)+"/"+personID+"/persistedFaces/"+persistedFaceID, nil)
}
