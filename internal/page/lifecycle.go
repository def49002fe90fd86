package page

const classPageHidden = "page-hidden"

// Trimmer implements the page-load and visibility optimizations: deferred
// image promotion, the page-hidden marker, and resource-error logging.
type Trimmer struct {
	ctx *Context
}

// NewTrimmer creates the trimmer.
func NewTrimmer(ctx *Context) *Trimmer {
	return &Trimmer{ctx: ctx}
}

// PromoteImages moves every deferred source into the real src attribute and
// drops the deferred attribute. Runs once at load.
func (t *Trimmer) PromoteImages() {
	for _, img := range t.ctx.Refs.DeferredImages {
		src := img.Attr("data-src")
		if src == "" {
			continue
		}
		img.SetAttr("src", src)
		img.RemoveAttr("data-src")
	}
}

// SetHidden keeps the page-hidden marker on the document root in lockstep
// with the page's hidden/visible transitions.
func (t *Trimmer) SetHidden(hidden bool) {
	t.ctx.Refs.Root.ToggleClass(classPageHidden, hidden)
}

// ResourceError logs a failed resource load. No retry, no fallback asset.
func (t *Trimmer) ResourceError(src string) {
	t.ctx.Log.Warn("resource failed to load", "src", src)
}
