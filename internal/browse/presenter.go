package browse

// PaginationView holds display-only pagination facts derived from the
// current view and its committed result. Deriving them fresh on every render
// avoids stored booleans drifting out of sync with the data they describe.
type PaginationView struct {
	CurrentPage  int  // one-based for display
	TotalPages   int  // valid only when TotalKnown
	TotalKnown   bool // false when the result carried no total count
	IsFirstPage  bool
	IsLastPage   bool
	ShowControls bool
}

// Derive computes the pagination facts for q and r. It is a pure function of
// its inputs. A nil result yields the empty-page view with controls hidden.
func Derive(q ViewQuery, r *PageResult) PaginationView {
	v := PaginationView{
		CurrentPage: q.Index/q.Limit + 1,
		IsFirstPage: q.Index == 0,
		IsLastPage:  true,
	}
	if r == nil {
		return v
	}

	v.IsLastPage = !r.HasMore
	if r.TotalKnown {
		v.TotalKnown = true
		v.TotalPages = (r.TotalCount + q.Limit - 1) / q.Limit
	}

	// Controls are pointless when everything fits on one page. When the
	// total is unknown that means: nothing further (HasMore false) and
	// nothing behind (offset zero).
	multi := r.TotalCount > q.Limit
	if !r.TotalKnown {
		multi = r.HasMore || q.Index > 0
	}
	v.ShowControls = len(r.Drinks) > 0 && multi
	return v
}
