package types

type (
	// PostResult records what happened to a single post during a build.
	PostResult struct {
		Folder  string `json:"folder"`
		Path    string `json:"path"`
		Success bool   `json:"success"`
		Hidden  bool   `json:"hidden,omitempty"`
		Message string `json:"message,omitempty"`
	}

	// BuildReport summarizes a full site build.
	BuildReport struct {
		Results []PostResult `json:"results"`
		Posts   []BlogPost   `json:"posts"`
	}
)

// Failed returns the results of posts that could not be rendered.
func (r BuildReport) Failed() []PostResult {
	var failed []PostResult
	for _, res := range r.Results {
		if !res.Success {
			failed = append(failed, res)
		}
	}
	return failed
}
