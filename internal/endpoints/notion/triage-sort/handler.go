package triagesort

import (
	"fmt"
	"net/http"
	"time"

	"creator-api/internal/common/completion"
	"creator-api/internal/common/config"
	"creator-api/internal/common/errors"
	apphttp "creator-api/internal/common/http"
	"creator-api/internal/common/logger"
	"creator-api/internal/common/metrics"
	"creator-api/internal/common/validation"
)

const (
	Endpoint = "triage-sort"
	Route    = "POST /api/notion/sort"
)

type Handler struct {
	config       *Config
	logger       logger.Logger
	service      *Service
	errorHandler *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig    *config.Config
	Completer    completion.Completer
	Store        IntegrationStore
	Workspace    WorkspaceClient
	CustomConfig *Config
	Logger       logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	endpointConfig := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if opts.Completer == nil || opts.Store == nil || opts.Workspace == nil {
		return nil, fmt.Errorf("%s requires a completer, an integration store and a workspace client", Endpoint)
	}

	var loggerInstance logger.Logger
	if opts.Logger != nil {
		loggerInstance = opts.Logger
	} else {
		loggerInstance = logger.NewStructured("info", "json")
	}
	loggerInstance = loggerInstance.With(map[string]interface{}{"endpoint": Endpoint})

	return &Handler{
		config:       endpointConfig,
		logger:       loggerInstance,
		errorHandler: errors.NewErrorHandler(loggerInstance),
		service: NewService(ServiceDependencies{
			Completer: opts.Completer,
			Store:     opts.Store,
			Workspace: opts.Workspace,
			Logger:    loggerInstance,
		}, endpointConfig),
	}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()
	metrics.RequestsActive.WithLabelValues(Endpoint).Inc()
	defer metrics.RequestsActive.WithLabelValues(Endpoint).Dec()
	defer func() {
		metrics.RequestDuration.WithLabelValues(Endpoint).Observe(time.Since(startTime).Seconds())
	}()

	if !h.config.Enabled {
		h.fail(w, r, errors.NewEndpointDisabledError(Endpoint))
		return
	}

	input, err := h.parseInput(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	output, err := h.service.Execute(r.Context(), input)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	metrics.RequestsTotal.WithLabelValues(Endpoint, apphttp.StatusSuccess).Inc()
	apphttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":        apphttp.StatusSuccess,
		"notionPageUrl": output.NotionPageURL,
	})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	metrics.RequestsTotal.WithLabelValues(Endpoint, apphttp.StatusError).Inc()
	h.errorHandler.HandleRequestError(w, r, Endpoint, err)
}

func (h *Handler) parseInput(r *http.Request) (*Input, error) {
	variables, err := apphttp.DecodeJSONObject(r.Body)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	validationResult := validation.ValidateInput(variables, GetInputSchema())
	if !validationResult.Valid {
		return nil, errors.NewValidationError(validationResult.FirstMessage())
	}

	return &Input{
		UserID: variables["userId"].(string),
		Text:   variables["text"].(string),
	}, nil
}

func createConfigFromAppConfig(appConfig *config.Config, customConfig *Config) *Config {
	if customConfig != nil {
		return customConfig
	}

	cfg := DefaultConfig()
	if appConfig != nil {
		endpointCfg := config.GetEndpointConfig(appConfig, Endpoint)
		cfg.Enabled = endpointCfg.Enabled
		cfg.StrictOutput = endpointCfg.StrictOutput
	}
	return cfg
}
