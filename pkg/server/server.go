// Package server implements the MessagePack IPC loop described in interface.go.
package server

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/bengalinput/shobdo/internal/logger"
	"github.com/bengalinput/shobdo/internal/utils"
	"github.com/bengalinput/shobdo/pkg/config"
	"github.com/bengalinput/shobdo/pkg/suggest"
	"github.com/vmihailenco/msgpack/v5"
)

var log = logger.New("server")

// Server reads Request values from stdin and writes Response or
// ErrorResponse values to stdout until the client disconnects.
type Server struct {
	avro   *suggest.AvroSuggester
	bangla *suggest.BanglaSuggester

	config     *config.Config
	configPath string

	decoder      *msgpack.Decoder
	writeMutex   sync.Mutex
	requestCount int64
}

// NewServer constructs a Server wrapping the given suggesters.
func NewServer(avro *suggest.AvroSuggester, bangla *suggest.BanglaSuggester, cfg *config.Config, configPath string) *Server {
	return &Server{
		avro:       avro,
		bangla:     bangla,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
	}
}

// Start runs the request/response loop until the client disconnects
// (EOF) or the process is terminated.
func (s *Server) Start() error {
	log.Debug("starting msgpack suggestion server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("client disconnected")
				return nil
			}
			continue
		}
	}
}

func (s *Server) processRequest() error {
	s.requestCount++
	if s.requestCount%100 == 0 {
		s.reloadConfig()
	}

	var req Request
	if err := s.decoder.Decode(&req); err != nil {
		return err
	}

	if req.Q == "" {
		return s.sendError(req.ID, "empty query")
	}
	if len(req.Q) < s.config.Server.MinPrefix {
		return s.sendError(req.ID, fmt.Sprintf("query too short (min: %d)", s.config.Server.MinPrefix))
	}
	if len(req.Q) > s.config.Server.MaxPrefix {
		return s.sendError(req.ID, fmt.Sprintf("query too long (max: %d)", s.config.Server.MaxPrefix))
	}

	start := time.Now()
	var words []string
	switch req.Mode {
	case "avro":
		if s.config.Server.EnableFilter && !utils.IsValidInput(req.Q) {
			return s.sendResponse(&Response{ID: req.ID, Words: []string{}, Micros: 0})
		}
		words = s.avro.Suggest(req.Q)
	case "bangla":
		words = s.bangla.Suggest(req.Q)
	default:
		return s.sendError(req.ID, fmt.Sprintf("unknown mode: %q", req.Mode))
	}
	elapsed := time.Since(start)

	if len(words) > s.config.Server.MaxResults {
		words = words[:s.config.Server.MaxResults]
	}

	return s.sendResponse(&Response{ID: req.ID, Words: words, Micros: elapsed.Microseconds()})
}

func (s *Server) reloadConfig() {
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("failed to reload config, keeping current: %v", err)
		return
	}
	s.config = cfg
	log.Debugf("config reloaded from %s", s.configPath)
}

func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return os.Stdout.Sync()
}

func (s *Server) sendError(id, message string) error {
	return s.sendResponse(&ErrorResponse{ID: id, Error: message})
}
