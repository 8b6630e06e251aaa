package client

import (
	"context"
	"encoding/json"
	"fmt"
)

const endpointLiveData = "/get_live_data"

// GetLiveData fetches the current room snapshot from /get_live_data.
func (c *DefaultClient) GetLiveData(ctx context.Context) (*LiveData, error) {
	body, err := c.doGet(ctx, endpointLiveData)
	if err != nil {
		return nil, fmt.Errorf("GetLiveData: %w", err)
	}

	var result LiveData
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("GetLiveData: %w", &FetchError{Kind: KindParse, Err: fmt.Errorf("decode: %w", err)})
	}
	if result.Rooms == nil {
		result.Rooms = map[string]RoomData{}
	}
	return &result, nil
}
