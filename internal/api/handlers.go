package api

import (
	"fmt"
	"net/http"

	"github.com/lueurxax/inkguard/internal/core/domain"
	apperrors "github.com/lueurxax/inkguard/internal/core/errors"
	"github.com/lueurxax/inkguard/internal/process/account"
	"github.com/lueurxax/inkguard/internal/process/hashtags"
	"github.com/lueurxax/inkguard/internal/process/scoring"
)

type inkRequest struct {
	Text string `json:"text"`
	Flow string `json:"flow"`
}

type textRequest struct {
	Text string `json:"text"`
}

type validateInkResponse struct {
	domain.InkValidation
	CanPublish bool `json:"can_publish"`
}

type scoreInkResponse struct {
	XP          int                   `json:"xp"`
	Breakdown   domain.ScoreBreakdown `json:"breakdown"`
	ReadingTime domain.ReadingTime    `json:"reading_time"`
	Validation  domain.InkValidation  `json:"validation"`
	CanPublish  bool                  `json:"can_publish"`
}

func (s *Server) handleLimits(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.validator.Limits())
}

func (s *Server) handleValidateInk(w http.ResponseWriter, r *http.Request) {
	req, flow, ok := decodeInkRequest(w, r)
	if !ok {
		return
	}

	verdict := s.validator.ValidateFlow(req.Text, flow)

	writeJSON(w, http.StatusOK, validateInkResponse{
		InkValidation: domain.InkValidationFromVerdict(verdict),
		CanPublish:    s.validator.Policy(flow).CanPublish(req.Text, verdict),
	})
}

func (s *Server) handleScoreInk(w http.ResponseWriter, r *http.Request) {
	req, flow, ok := decodeInkRequest(w, r)
	if !ok {
		return
	}

	verdict := s.validator.ValidateFlow(req.Text, flow)
	breakdown := s.scorer.Breakdown(req.Text, verdict)

	writeJSON(w, http.StatusOK, scoreInkResponse{
		XP:          breakdown.Total,
		Breakdown:   breakdown,
		ReadingTime: scoring.ReadingTime(req.Text),
		Validation:  domain.InkValidationFromVerdict(verdict),
		CanPublish:  s.validator.Policy(flow).CanPublish(req.Text, verdict),
	})
}

func (s *Server) handleValidateHashtags(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, hashtags.Validate(req.Text, s.validator.Limits()))
}

func (s *Server) handleReadingTime(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, scoring.ReadingTime(req.Text))
}

func (s *Server) handleValidateAccount(w http.ResponseWriter, r *http.Request) {
	var req account.Registration
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, s.accounts.Validate(req))
}

func decodeInkRequest(w http.ResponseWriter, r *http.Request) (inkRequest, domain.Flow, bool) {
	var req inkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeDecodeError(w, err)
		return req, "", false
	}

	flow, ok := domain.ParseFlow(req.Flow)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Errorf("%w: %q", apperrors.ErrUnknownFlow, req.Flow).Error())
		return req, "", false
	}

	return req, flow, true
}
