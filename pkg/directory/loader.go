package directory

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/bytedance/sonic"

	"github.com/matst80/slask-directory/pkg/types"
)

// ToolsResponse is the collaborator payload of the tools list endpoint.
type ToolsResponse struct {
	Success bool          `json:"success"`
	Tools   []*types.Tool `json:"tools"`
	Error   string        `json:"error,omitempty"`
}

// Loader fetches the tool collection once at startup.
type Loader struct {
	Client  *http.Client
	BaseUrl string
}

func NewLoader(baseUrl string) *Loader {
	return &Loader{
		Client:  &http.Client{Timeout: 10 * time.Second},
		BaseUrl: baseUrl,
	}
}

func (l *Loader) fetch(ctx context.Context) ([]*types.Tool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.BaseUrl+"/api/tools/", nil)
	if err != nil {
		return nil, err
	}
	res, err := l.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var payload ToolsResponse
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("api error: %s", payload.Error)
	}
	return payload.Tools, nil
}

// LoadTools returns the fetched collection, degrading to an empty one on
// any failure. The condition is logged, never surfaced to the caller.
func (l *Loader) LoadTools(ctx context.Context) []*types.Tool {
	tools, err := l.fetch(ctx)
	if err != nil {
		log.Printf("Error loading tools: %v", err)
		return []*types.Tool{}
	}
	return tools
}
