package panes

// Pane is the state of one directory view: where it points, which row the
// cursor is on, and the entries listed on the last refresh. The navigation
// controller owns both panes exclusively; nothing here is safe for
// concurrent use and nothing needs to be.
type Pane struct {
	Dir     string
	Cursor  int
	Entries []Entry
}

// NewPane returns a pane pointing at dir. Call Refresh before first use.
func NewPane(dir string) *Pane {
	return &Pane{Dir: dir}
}

// Refresh canonicalizes the pane's directory and re-lists it. The cursor is
// clamped to the last valid index when the listing shrank. On a listing
// failure the previous entries are kept so the view degrades instead of
// going blank.
func (p *Pane) Refresh(showHidden bool) error {
	dir, err := Canonical(p.Dir)
	if err != nil {
		return err
	}
	p.Dir = dir

	entries, err := List(p.Dir, showHidden)
	if err != nil {
		return err
	}
	p.Entries = entries

	if p.Cursor >= len(p.Entries) {
		p.Cursor = len(p.Entries) - 1
	}
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	return nil
}

// Selected returns the entry under the cursor. An unrefreshed or failed
// listing yields the parent sentinel of the pane's own directory, which is
// inert for every file operation.
func (p *Pane) Selected() Entry {
	if len(p.Entries) == 0 || p.Cursor >= len(p.Entries) {
		return NewParent(p.Dir)
	}
	return p.Entries[p.Cursor]
}

// MoveUp moves the cursor one row up, clamped at the top.
func (p *Pane) MoveUp() {
	if p.Cursor > 0 {
		p.Cursor--
	}
}

// MoveDown moves the cursor one row down, clamped at the last entry.
func (p *Pane) MoveDown() {
	if p.Cursor < len(p.Entries)-1 {
		p.Cursor++
	}
}

// ChangeDir points the pane at a new directory and resets the cursor.
// The caller refreshes afterwards.
func (p *Pane) ChangeDir(dir string) {
	p.Dir = dir
	p.Cursor = 0
}
