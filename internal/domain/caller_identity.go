package domain

// CallerIdentitySource は呼び出し元リポジトリの取得方法
type CallerIdentitySource struct {
	value string
}

var (
	CallerIdentitySourceEnv  = CallerIdentitySource{value: "env"}
	CallerIdentitySourceOIDC = CallerIdentitySource{value: "oidc"}
)

func (s CallerIdentitySource) String() string {
	return s.value
}

// CallerIdentity は呼び出し元ワークフローの識別情報
type CallerIdentity struct {
	source         CallerIdentitySource
	repository     string
	ref            string
	actor          string
	jobWorkflowRef string
}

func NewCallerIdentity(source CallerIdentitySource, repository, ref, actor, jobWorkflowRef string) *CallerIdentity {
	return &CallerIdentity{
		source:         source,
		repository:     repository,
		ref:            ref,
		actor:          actor,
		jobWorkflowRef: jobWorkflowRef,
	}
}

func (c *CallerIdentity) Source() CallerIdentitySource {
	return c.source
}

func (c *CallerIdentity) Repository() string {
	return c.repository
}

func (c *CallerIdentity) Ref() string {
	return c.ref
}

func (c *CallerIdentity) Actor() string {
	return c.actor
}

func (c *CallerIdentity) JobWorkflowRef() string {
	return c.jobWorkflowRef
}

// RepositoryIdentifier はリポジトリ文字列を検証して返す
func (c *CallerIdentity) RepositoryIdentifier() (*RepositoryIdentifier, error) {
	return NewRepositoryIdentifier(c.repository)
}
