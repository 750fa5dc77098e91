package oura

import "context"

// PersonalInfo holds the personal information of the authenticated user.
type PersonalInfo struct {
	ID            string  `json:"id"`
	Age           int     `json:"age"`
	Weight        float64 `json:"weight"`
	Height        float64 `json:"height"`
	BiologicalSex string  `json:"biological_sex"`
	Email         string  `json:"email"`
}

// PersonalInfoService handles communication with the personal info endpoint.
type PersonalInfoService struct {
	client *Client
}

// Get fetches the personal information record of the authenticated user.
// The endpoint takes no parameters and always returns a single record.
func (s *PersonalInfoService) Get(ctx context.Context) (*PersonalInfo, error) {
	var info PersonalInfo
	if err := s.client.get(ctx, resourcePersonalInfo.path(), nil, &info); err != nil {
		return nil, err
	}

	return &info, nil
}
