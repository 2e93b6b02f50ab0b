package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/classroom-portal/config"
	"github.com/lshigami/classroom-portal/internal/dto"
	"github.com/lshigami/classroom-portal/internal/metrics"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

const (
	ProviderJDoodle = "jdoodle"
	ProviderGemini  = "gemini"

	defaultLanguage = "java"
)

// jdoodleVersions maps editor languages to JDoodle language/versionIndex.
var jdoodleVersions = map[string]struct{ language, version string }{
	"java":    {"java", "4"},
	"python":  {"python3", "4"},
	"python3": {"python3", "4"},
	"c":       {"c", "5"},
	"cpp":     {"cpp17", "1"},
	"go":      {"go", "4"},
	"nodejs":  {"nodejs", "4"},
}

// CodeRunnerService compiles and runs editor code on a remote provider.
// Provider failures are reported in the response Error field; the returned
// error is reserved for invalid requests.
type CodeRunnerService interface {
	Run(ctx context.Context, req dto.RunCodeRequest) (*dto.RunCodeResponse, error)
}

type codeExecutor interface {
	Name() string
	Execute(ctx context.Context, sourceCode, stdin, language string) (string, error)
}

type codeRunnerService struct {
	executor codeExecutor
	timeout  time.Duration
}

func NewCodeRunnerService(cfg *config.Config) (CodeRunnerService, error) {
	var executor codeExecutor
	switch cfg.CodeRunner.Provider {
	case ProviderGemini:
		g, err := newGeminiExecutor(cfg)
		if err != nil {
			return nil, err
		}
		executor = g
	case ProviderJDoodle, "":
		executor = newJDoodleExecutor(cfg, &http.Client{Timeout: cfg.CodeRunner.Timeout})
	default:
		return nil, fmt.Errorf("unknown CODE_RUNNER provider %q", cfg.CodeRunner.Provider)
	}
	log.Info().Str("provider", executor.Name()).Dur("timeout", cfg.CodeRunner.Timeout).Msg("Code runner configured")
	return &codeRunnerService{executor: executor, timeout: cfg.CodeRunner.Timeout}, nil
}

func (s *codeRunnerService) Run(ctx context.Context, req dto.RunCodeRequest) (*dto.RunCodeResponse, error) {
	if strings.TrimSpace(req.SourceCode) == "" {
		return nil, newValidationError("source_code", "must not be blank")
	}
	language := strings.ToLower(strings.TrimSpace(req.Language))
	if language == "" {
		language = defaultLanguage
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	output, err := s.executor.Execute(ctx, req.SourceCode, req.Stdin, language)
	if err != nil {
		metrics.CodeRunsTotal.WithLabelValues(s.executor.Name(), "error").Inc()
		log.Warn().Err(err).Str("provider", s.executor.Name()).Str("language", language).Msg("Code execution failed")
		return &dto.RunCodeResponse{Output: output, Error: err.Error()}, nil
	}
	metrics.CodeRunsTotal.WithLabelValues(s.executor.Name(), "ok").Inc()
	return &dto.RunCodeResponse{Output: output}, nil
}

// --- JDoodle ---

type jdoodleExecutor struct {
	client       *http.Client
	endpoint     string
	clientID     string
	clientSecret string
}

func newJDoodleExecutor(cfg *config.Config, client *http.Client) *jdoodleExecutor {
	return &jdoodleExecutor{
		client:       client,
		endpoint:     cfg.CodeRunner.JDoodleEndpoint,
		clientID:     cfg.CodeRunner.JDoodleClientID,
		clientSecret: cfg.CodeRunner.JDoodleClientSecret,
	}
}

func (e *jdoodleExecutor) Name() string { return ProviderJDoodle }

type jdoodleRequest struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	Script       string `json:"script"`
	Stdin        string `json:"stdin,omitempty"`
	Language     string `json:"language"`
	VersionIndex string `json:"versionIndex"`
}

type jdoodleResponse struct {
	Output     string `json:"output"`
	StatusCode int    `json:"statusCode"`
	Memory     string `json:"memory"`
	CPUTime    string `json:"cpuTime"`
	Error      string `json:"error"`
}

func (e *jdoodleExecutor) Execute(ctx context.Context, sourceCode, stdin, language string) (string, error) {
	if e.clientID == "" || e.clientSecret == "" {
		return "", fmt.Errorf("code runner credentials are not configured")
	}
	version, ok := jdoodleVersions[language]
	if !ok {
		return "", fmt.Errorf("unsupported language %q", language)
	}

	body, err := json.Marshal(jdoodleRequest{
		ClientID:     e.clientID,
		ClientSecret: e.clientSecret,
		Script:       sourceCode,
		Stdin:        stdin,
		Language:     version.language,
		VersionIndex: version.version,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode execution request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, e.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build execution request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("execution service unreachable: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read execution response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("execution service returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out jdoodleResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("malformed execution response: %w", err)
	}
	if out.Error != "" {
		return out.Output, errors.New(out.Error)
	}
	return out.Output, nil
}

// --- Gemini ---

type geminiExecutor struct {
	model *genai.GenerativeModel
}

func newGeminiExecutor(cfg *config.Config) (*geminiExecutor, error) {
	if cfg.CodeRunner.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. The gemini code runner will be non-functional.")
		return &geminiExecutor{}, nil
	}
	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.CodeRunner.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.CodeRunner.GeminiModel)
	model.SetTemperature(0)
	return &geminiExecutor{model: model}, nil
}

func (e *geminiExecutor) Name() string { return ProviderGemini }

func (e *geminiExecutor) Execute(ctx context.Context, sourceCode, stdin, language string) (string, error) {
	if e.model == nil {
		return "", fmt.Errorf("code runner credentials are not configured")
	}

	resp, err := e.model.GenerateContent(ctx, genai.Text(buildExecutionPrompt(sourceCode, stdin, language)))
	if err != nil {
		return "", fmt.Errorf("gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	output := strings.TrimSpace(sb.String())
	if output == "" {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return stripCodeFence(output), nil
}

func buildExecutionPrompt(sourceCode, stdin, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a %s compiler and runtime.\n", language)
	b.WriteString("Compile and run the program below exactly as a real toolchain would.\n")
	b.WriteString("Reply with the program's standard output only. If compilation fails or the program throws, reply with the compiler or runtime error message instead.\n")
	b.WriteString("Do not add explanations.\n\n")
	fmt.Fprintf(&b, "Source code:\n```%s\n%s\n```\n", language, sourceCode)
	if stdin != "" {
		fmt.Fprintf(&b, "\nStandard input:\n```\n%s\n```\n", stdin)
	}
	return b.String()
}

// stripCodeFence unwraps a reply the model put inside a ``` block.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") || !strings.HasSuffix(s, "```") || len(s) < 6 {
		return s
	}
	s = strings.TrimSuffix(strings.TrimPrefix(s, "```"), "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:]
	}
	return strings.TrimSpace(s)
}
