package service

import (
	"context"

	"artikled/internal/auth"
	"artikled/internal/model"
)

// Edit workflow phases. The credential travels with each request instead of
// living in server-side session state, so every phase re-runs authorization.
const (
	ModeCheck = "check"
	ModeSave  = "save"
)

// EditCheckResult is returned by the confirmation phase: the article's current
// data for the client to edit, plus the credential echoed back so the client
// resubmits it verbatim at save time. The echoed password is visible to
// whoever can read the confirmation response; that exposure is inherited from
// the original confirm-then-commit design and deliberately not papered over.
type EditCheckResult struct {
	Article  *model.Article `json:"article"`
	Password string         `json:"password"`
}

// EditWorkflow is the two-phase edit state machine: check (re-display current
// data for confirmation) followed by save (apply new values). Both phases
// validate the credential; failing either terminates with ErrUnauthorized no
// matter how far the workflow had progressed.
type EditWorkflow struct {
	gate     *auth.Gate
	articles ArticleService
}

// NewEditWorkflow constructs an EditWorkflow.
func NewEditWorkflow(gate *auth.Gate, articles ArticleService) *EditWorkflow {
	return &EditWorkflow{gate: gate, articles: articles}
}

// Run dispatches on the submitted mode. The result is non-nil only for the
// check phase. An unrecognized mode terminates with ErrInvalidMode.
func (w *EditWorkflow) Run(ctx context.Context, id int64, password, mode, title, body string, media *MediaUpload) (*EditCheckResult, error) {
	switch mode {
	case ModeCheck:
		return w.Check(ctx, id, password)
	case ModeSave:
		return nil, w.Save(ctx, id, password, title, body, media)
	default:
		return nil, ErrInvalidMode
	}
}

// Check validates the credential and returns the article's current data
// unmodified for the confirmation form.
func (w *EditWorkflow) Check(ctx context.Context, id int64, password string) (*EditCheckResult, error) {
	if !w.gate.Authorize(password) {
		return nil, ErrUnauthorized
	}
	a, err := w.articles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &EditCheckResult{Article: a, Password: password}, nil
}

// Save re-validates the credential and commits the new field values. A new
// media upload is optional: when present it fully replaces the prior media
// set; when absent the existing media is untouched.
func (w *EditWorkflow) Save(ctx context.Context, id int64, password, title, body string, media *MediaUpload) error {
	if !w.gate.Authorize(password) {
		return ErrUnauthorized
	}
	if err := w.articles.Update(ctx, id, title, body); err != nil {
		return err
	}
	if media != nil {
		return w.articles.ReplaceMedia(ctx, id, *media)
	}
	return nil
}

// DeleteWorkflow gates article and comment removal behind the shared admin
// credential. Single phase: validate, then delete.
type DeleteWorkflow struct {
	gate     *auth.Gate
	articles ArticleService
	comments CommentService
}

// NewDeleteWorkflow constructs a DeleteWorkflow.
func NewDeleteWorkflow(gate *auth.Gate, articles ArticleService, comments CommentService) *DeleteWorkflow {
	return &DeleteWorkflow{gate: gate, articles: articles, comments: comments}
}

// DeleteArticle removes an article and everything attached to it.
func (w *DeleteWorkflow) DeleteArticle(ctx context.Context, id int64, password string) error {
	if !w.gate.Authorize(password) {
		return ErrUnauthorized
	}
	return w.articles.Delete(ctx, id)
}

// DeleteComment removes a comment and reports the owning article so the
// caller can redirect back to the right page. hasArticle is false when the
// owner can no longer be determined; the caller then redirects to the listing.
func (w *DeleteWorkflow) DeleteComment(ctx context.Context, commentID int64, password string) (articleID int64, hasArticle bool, err error) {
	if !w.gate.Authorize(password) {
		return 0, false, ErrUnauthorized
	}
	return w.comments.Delete(ctx, commentID)
}
