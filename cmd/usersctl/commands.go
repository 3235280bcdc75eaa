package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/samvad-hq/samvad-users-client/internal/config"
	"github.com/samvad-hq/samvad-users-client/internal/logger"
	"github.com/samvad-hq/samvad-users-client/internal/payload"
	"github.com/samvad-hq/samvad-users-client/pkg/api"
	"github.com/samvad-hq/samvad-users-client/pkg/httpclient"
	"github.com/samvad-hq/samvad-users-client/pkg/users"
)

// errRequestFailed signals a settled call whose envelope carries an error.
var errRequestFailed = errors.New("request failed")

type runtime struct {
	cfg     *config.Config
	log     logger.Logger
	baseURL string
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           "usersctl",
		Short:         "Call the users API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if rt.baseURL != "" {
				cfg.APIBaseURL = rt.baseURL
			}
			log, err := logger.Init(cfg)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			if cfg.APIBaseURL == "" {
				log.WarnObj("api base url is not configured", "env", []string{"API_BASE_URL", "VITE_API_BASE_URL"})
			}
			rt.cfg, rt.log = cfg, log
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = logger.Close()
		},
	}
	root.PersistentFlags().StringVar(&rt.baseURL, "base-url", "", "API base URL (overrides API_BASE_URL)")

	root.AddCommand(newAddUserCmd(rt), newRequestCmd(rt))
	return root
}

func newAddUserCmd(rt *runtime) *cobra.Command {
	var data, file string
	cmd := &cobra.Command{
		Use:   "add-user",
		Short: "POST a user document to /users/create",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readBody(data, file)
			if err != nil {
				return err
			}
			if body == nil {
				return errors.New("add-user requires --data or --file")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			res := users.New(rt.cfg.APIBaseURL, rt.executorOptions()...).AddUser(ctx, body)
			return writeResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&data, "data", "", "inline JSON user document")
	cmd.Flags().StringVar(&file, "file", "", "JSON or YAML file with the user document (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	return cmd
}

func newRequestCmd(rt *runtime) *cobra.Command {
	var resource, endpoint, method, data, file string
	cmd := &cobra.Command{
		Use:   "request",
		Short: "Send an arbitrary JSON request to {base}/{resource}{endpoint}",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			body, err := readBody(data, file)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			exec := api.New(rt.cfg.APIBaseURL, resource, rt.executorOptions()...)
			res := exec.Request(ctx, endpoint, strings.ToUpper(method), body)
			return writeResult(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().StringVar(&resource, "resource", "", "resource path segment, e.g. users")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "endpoint suffix, e.g. /create")
	cmd.Flags().StringVar(&method, "method", http.MethodGet, "HTTP method")
	cmd.Flags().StringVar(&data, "data", "", "inline JSON body")
	cmd.Flags().StringVar(&file, "file", "", "JSON or YAML body file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("data", "file")
	_ = cmd.MarkFlagRequired("resource")
	return cmd
}

func (rt *runtime) executorOptions() []api.Option {
	client := httpclient.NewRestyClient(rt.cfg.HTTPTimeout)
	if logger.S != nil {
		client.WithLogger(logger.S)
	}
	return []api.Option{api.WithClient(client), api.WithLogger(rt.log)}
}

// readBody returns nil when neither source is given.
func readBody(data, file string) (any, error) {
	switch {
	case data != "":
		body, err := payload.Parse([]byte(data), ".json")
		if err != nil {
			return nil, fmt.Errorf("parse --data: %w", err)
		}
		return body, nil
	case file != "":
		body, err := payload.Load(file)
		if err != nil {
			return nil, fmt.Errorf("load --file: %w", err)
		}
		return body, nil
	default:
		return nil, nil
	}
}

type envelope struct {
	Data    any    `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
	Kind    string `json:"kind,omitempty"`
	Status  int    `json:"status,omitempty"`
}

func writeResult(w io.Writer, res *api.Result) error {
	out := envelope{Data: res.Data, Loading: res.Loading}
	if res.Err != nil {
		out.Error = res.Err.Message
		out.Kind = string(res.Err.Kind)
		out.Status = res.Err.Status
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	if !res.OK() {
		return errRequestFailed
	}
	return nil
}
