package domain

import (
	"context"
	"time"

	"github.com/newmo-oss/ctxtime"
)

// PublishResult は1回の生成・公開の結果
type PublishResult struct {
	runID      string
	request    PublishRequest
	credential CredentialKind
	archiveKey string
	startedAt  time.Time
	finishedAt time.Time
	published  bool
}

func NewPublishResult(ctx context.Context, runID string, request PublishRequest) *PublishResult {
	return &PublishResult{
		runID:      runID,
		request:    request,
		credential: CredentialKindNone,
		startedAt:  ctxtime.Now(ctx),
	}
}

func (r *PublishResult) SetArchiveKey(key string) {
	r.archiveKey = key
}

func (r *PublishResult) MarkPublished(ctx context.Context, kind CredentialKind) {
	r.credential = kind
	r.published = !r.request.DryRun
	r.finishedAt = ctxtime.Now(ctx)
}

func (r *PublishResult) RunID() string {
	return r.runID
}

func (r *PublishResult) Request() PublishRequest {
	return r.request
}

func (r *PublishResult) Credential() CredentialKind {
	return r.credential
}

func (r *PublishResult) ArchiveKey() string {
	return r.archiveKey
}

func (r *PublishResult) Published() bool {
	return r.published
}

func (r *PublishResult) StartedAt() time.Time {
	return r.startedAt
}

func (r *PublishResult) FinishedAt() time.Time {
	return r.finishedAt
}

func (r *PublishResult) Duration() time.Duration {
	if r.finishedAt.IsZero() {
		return 0
	}
	return r.finishedAt.Sub(r.startedAt)
}
