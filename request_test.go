package hoverdoc_test

import (
	"testing"

	"github.com/fwojciec/hoverdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      hoverdoc.DocRequest
		wantCode string
	}{
		{
			name: "valid element request",
			req:  hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "video", Language: hoverdoc.LangEnUS},
		},
		{
			name: "valid element attribute request",
			req: hoverdoc.DocRequest{
				Kind: hoverdoc.KindElementAttribute, Name: "autoplay",
				OwningElement: "video", Language: hoverdoc.LangEnUS,
			},
		},
		{
			name:     "missing name",
			req:      hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Language: hoverdoc.LangEnUS},
			wantCode: hoverdoc.EINVALID,
		},
		{
			name:     "unknown kind",
			req:      hoverdoc.DocRequest{Kind: "selector", Name: "video", Language: hoverdoc.LangEnUS},
			wantCode: hoverdoc.EINVALID,
		},
		{
			name:     "unsupported language",
			req:      hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "video", Language: "xx-XX"},
			wantCode: hoverdoc.EINVALID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, hoverdoc.ErrorCode(err))
			}
		})
	}
}

// Story: Cache Key Injectivity
// A global attribute and an element attribute with the same textual name
// must never share a cache key.

func TestDocRequest_CacheKey_DistinguishesKinds(t *testing.T) {
	t.Parallel()

	global := hoverdoc.DocRequest{Kind: hoverdoc.KindGlobalAttribute, Name: "hidden", Language: hoverdoc.LangEnUS}
	scoped := hoverdoc.DocRequest{Kind: hoverdoc.KindElementAttribute, Name: "hidden", OwningElement: "div", Language: hoverdoc.LangEnUS}

	assert.NotEqual(t, global.CacheKey(), scoped.CacheKey())
}

func TestDocRequest_CacheKey_DistinguishesOwningElements(t *testing.T) {
	t.Parallel()

	onVideo := hoverdoc.DocRequest{Kind: hoverdoc.KindElementAttribute, Name: "loop", OwningElement: "video", Language: hoverdoc.LangEnUS}
	onAudio := hoverdoc.DocRequest{Kind: hoverdoc.KindElementAttribute, Name: "loop", OwningElement: "audio", Language: hoverdoc.LangEnUS}

	assert.NotEqual(t, onVideo.CacheKey(), onAudio.CacheKey())
}

func TestDocRequest_CacheKey_DistinguishesLanguages(t *testing.T) {
	t.Parallel()

	english := hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "video", Language: hoverdoc.LangEnUS}
	french := hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "video", Language: hoverdoc.LangFr}

	assert.NotEqual(t, english.CacheKey(), french.CacheKey())
}

func TestDocRequest_CacheKey_NormalizesCase(t *testing.T) {
	t.Parallel()

	upper := hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "VIDEO", Language: hoverdoc.LangEnUS}
	lower := hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "video", Language: hoverdoc.LangEnUS}

	assert.Equal(t, lower.CacheKey(), upper.CacheKey())
}

func TestDocRequest_URL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  hoverdoc.DocRequest
		want string
	}{
		{
			name: "element",
			req:  hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "video", Language: hoverdoc.LangEnUS},
			want: "https://developer.mozilla.org/en-US/docs/Web/HTML/Element/video",
		},
		{
			name: "global attribute",
			req:  hoverdoc.DocRequest{Kind: hoverdoc.KindGlobalAttribute, Name: "hidden", Language: hoverdoc.LangEnUS},
			want: "https://developer.mozilla.org/en-US/docs/Web/HTML/Global_attributes/hidden",
		},
		{
			name: "element attribute",
			req: hoverdoc.DocRequest{
				Kind: hoverdoc.KindElementAttribute, Name: "autoplay",
				OwningElement: "video", Language: hoverdoc.LangEnUS,
			},
			want: "https://developer.mozilla.org/en-US/docs/Web/HTML/Attributes/autoplay",
		},
		{
			name: "localized element",
			req:  hoverdoc.DocRequest{Kind: hoverdoc.KindElement, Name: "video", Language: hoverdoc.LangFr},
			want: "https://developer.mozilla.org/fr/docs/Web/HTML/Element/video",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.req.URL())
		})
	}
}

func TestLanguage_Validate(t *testing.T) {
	t.Parallel()

	for _, lang := range hoverdoc.Languages() {
		assert.NoError(t, lang.Validate())
	}
	assert.Equal(t, hoverdoc.EINVALID, hoverdoc.ErrorCode(hoverdoc.Language("klingon").Validate()))
}
