package content

import "context"

// Intros exposes the single editable intro text.
type Intros struct {
	repo     *Repository
	position Position
}

// NewIntros binds the intro service to the row at position.
func NewIntros(repo *Repository, position Position) *Intros {
	return &Intros{repo: repo, position: position}
}

// Get returns the intro row.
func (s *Intros) Get(ctx context.Context) (Entry, error) {
	return s.repo.Get(ctx, KindIntro, s.position)
}

// UpdateText overwrites the intro text.
func (s *Intros) UpdateText(ctx context.Context, text string) error {
	return s.repo.Update(ctx, KindIntro, s.position, text)
}

// Iframes manages the embedded frame list.
type Iframes struct {
	repo *Repository
}

func NewIframes(repo *Repository) *Iframes {
	return &Iframes{repo: repo}
}

func (s *Iframes) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx, KindIframe)
}

// Create appends an empty iframe.
func (s *Iframes) Create(ctx context.Context) (Entry, error) {
	return s.repo.Create(ctx, KindIframe)
}

func (s *Iframes) Update(ctx context.Context, pos Position, content string) error {
	return s.repo.Update(ctx, KindIframe, pos, content)
}

// UpdateMany rewrites several iframes at once; either all apply or none do.
func (s *Iframes) UpdateMany(ctx context.Context, updates map[Position]string) error {
	return s.repo.UpdateMany(ctx, KindIframe, updates)
}

func (s *Iframes) Delete(ctx context.Context, pos Position) error {
	return s.repo.Delete(ctx, KindIframe, pos)
}

// Sections manages the free-form media sections.
type Sections struct {
	repo *Repository
}

func NewSections(repo *Repository) *Sections {
	return &Sections{repo: repo}
}

func (s *Sections) List(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx, KindSection)
}

// Create appends an empty section.
func (s *Sections) Create(ctx context.Context) (Entry, error) {
	return s.repo.Create(ctx, KindSection)
}

func (s *Sections) Update(ctx context.Context, pos Position, content string) error {
	return s.repo.Update(ctx, KindSection, pos, content)
}

func (s *Sections) Delete(ctx context.Context, pos Position) error {
	return s.repo.Delete(ctx, KindSection, pos)
}
