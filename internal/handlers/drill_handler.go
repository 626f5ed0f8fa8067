// internal/handlers/drill_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"go_5_vocab_drill/internal/config"
	"go_5_vocab_drill/internal/middleware"
	"go_5_vocab_drill/internal/model"
	"go_5_vocab_drill/internal/service"
	"go_5_vocab_drill/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type DrillHandler struct {
	service service.DrillService
	cfg     *config.Config
}

func NewDrillHandler(s service.DrillService, cfg *config.Config) *DrillHandler {
	return &DrillHandler{
		service: s,
		cfg:     cfg,
	}
}

// validateUserID はユーザーIDを検証します。
// ユーザーIDはファイル名にもなるため、パス区切り文字等は拒否します。
func validateUserID(userID string) error {
	if userID == "" || len(userID) > 64 ||
		strings.ContainsAny(userID, "/\\") || strings.Contains(userID, "..") {
		return model.NewAppError("INVALID_USER_ID", "ユーザーIDの形式が正しくありません。", "user_id", model.ErrInvalidInput)
	}
	return nil
}

func parseUserID(r *http.Request) (string, error) {
	userID := chi.URLParam(r, "user_id")
	if err := validateUserID(userID); err != nil {
		return "", err
	}
	return userID, nil
}

func parseLevel(r *http.Request) (model.Level, error) {
	level, err := model.ParseLevel(chi.URLParam(r, "level"))
	if err != nil {
		return "", model.NewAppError("INVALID_LEVEL", "レベルの指定が正しくありません。", "level", model.ErrInvalidInput)
	}
	return level, nil
}

// GetNextQuiz は次に出題するクイズを返すハンドラ。
// /next/{user_id}/{level} と /next/{user_id}/{level}/{count} の両方を処理します。
func (h *DrillHandler) GetNextQuiz(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := parseUserID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	level, err := parseLevel(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	count := h.cfg.App.QuizCount
	if countStr := chi.URLParam(r, "count"); countStr != "" {
		n, convErr := strconv.Atoi(countStr)
		if convErr != nil || n < 1 {
			webutil.HandleError(w, logger, model.NewAppError(
				"INVALID_COUNT", "出題数は1以上の整数で指定してください。", "count", model.ErrInvalidInput))
			return
		}
		if n > h.cfg.App.MaxQuizCount {
			n = h.cfg.App.MaxQuizCount
		}
		count = n
	}

	items, err := h.service.NextQuiz(r.Context(), userID, level, count)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	if items == nil {
		items = []model.QuizItem{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, items)
}

// RecordOutcome は解答結果を記録するハンドラ (GET /record/{user_id}/{question_id}/{correct})
func (h *DrillHandler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := parseUserID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	questionID := chi.URLParam(r, "question_id")

	// correctは文字列リテラル "true" / "false" のみ受け付ける
	var correct bool
	switch chi.URLParam(r, "correct") {
	case "true":
		correct = true
	case "false":
		correct = false
	default:
		webutil.HandleError(w, logger, model.NewAppError(
			"INVALID_CORRECT", `correctは"true"または"false"で指定してください。`, "correct", model.ErrInvalidInput))
		return
	}

	if err := h.service.RecordOutcome(r.Context(), userID, questionID, correct); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.CallStatus{Status: "OK"})
}

// PutRecordOutcome は解答結果をJSONボディで受け付けるハンドラ (PUT /record)
func (h *DrillHandler) PutRecordOutcome(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RecordOutcomeRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		webutil.HandleError(w, logger, model.NewAppError(
			"INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput))
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			firstErr := validationErrors[0]
			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				firstErr.Translate(webutil.Trans),
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	if err := validateUserID(req.User); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if err := h.service.RecordOutcome(r.Context(), req.User, req.QuestionID, *req.Correct); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.CallStatus{Status: "OK"})
}

// GetReport はユーザー×レベルの成績レポートを返すハンドラ
func (h *DrillHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := parseUserID(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	level, err := parseLevel(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	report, err := h.service.Report(r.Context(), userID, level)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, report)
}

// GetVocab は指定レベルの語彙リストを返すハンドラ
func (h *DrillHandler) GetVocab(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	level, err := parseLevel(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	entries := h.service.Vocab(level)
	if entries == nil {
		entries = []model.VocabEntry{}
	}
	webutil.RespondWithJSON(w, http.StatusOK, entries)
}
