package bcd_test

import (
	"testing"

	"github.com/fwojciec/hoverdoc"
	"github.com/fwojciec/hoverdoc/bcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDataset = `{
	"html": {
		"elements": {
			"video": {
				"__compat": {
					"support": {
						"chrome": {"version_added": "3"},
						"edge": {"version_added": "12"},
						"firefox": {"version_added": "3.5"},
						"ie": {"version_added": "9"},
						"safari": {"version_added": "3.1"}
					}
				},
				"autoplay": {
					"__compat": {
						"support": {
							"chrome": {"version_added": "3"},
							"firefox": {"version_added": true}
						}
					}
				}
			},
			"marquee": {
				"__compat": {
					"support": {
						"firefox": [
							{"version_added": "65", "version_removed": "68"},
							{"version_added": "1", "version_removed": "65"}
						]
					}
				}
			},
			"blink": {
				"__compat": {
					"support": {
						"firefox": {"version_added": true, "version_removed": "22"},
						"opera": {"version_added": null}
					}
				}
			},
			"portal": {
				"__compat": {
					"support": {
						"chrome": {"version_added": "preview"}
					}
				}
			}
		},
		"global_attributes": {
			"class": {
				"__compat": {
					"support": {
						"chrome": {"version_added": "32"},
						"firefox": {"version_added": true}
					}
				}
			}
		}
	}
}`

func mustService(t *testing.T) *bcd.Service {
	t.Helper()
	svc, err := bcd.New([]byte(testDataset))
	require.NoError(t, err)
	return svc
}

func TestService_SummarizeElement(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	got, err := svc.SummarizeElement("video")
	require.NoError(t, err)
	assert.Equal(t, []hoverdoc.BrowserSupport{
		{Browser: "Chrome", Version: "3", Supported: true},
		{Browser: "Edge", Version: "12", Supported: true},
		{Browser: "Firefox", Version: "3.5", Supported: true},
		{Browser: "Internet Explorer", Version: "9", Supported: true},
		{Browser: "Safari", Version: "3.1", Supported: true},
	}, got, "browsers must come back in dataset order with display names")
}

func TestService_SummarizeGlobalAttribute(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	got, err := svc.SummarizeGlobalAttribute("class")
	require.NoError(t, err)

	// A boolean version_added means "supported, version unknown" and
	// contributes no summary row.
	assert.Equal(t, []hoverdoc.BrowserSupport{
		{Browser: "Chrome", Version: "32", Supported: true},
	}, got)
}

func TestService_SummarizeElementAttribute(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	got, err := svc.SummarizeElementAttribute("video", "autoplay")
	require.NoError(t, err)
	assert.Equal(t, []hoverdoc.BrowserSupport{
		{Browser: "Chrome", Version: "3", Supported: true},
	}, got)
}

func TestService_FirstStatementWins(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	got, err := svc.SummarizeElement("marquee")
	require.NoError(t, err)
	assert.Equal(t, []hoverdoc.BrowserSupport{
		{Browser: "Firefox", Version: "65", Supported: true},
	}, got, "only the first of several statements is considered")
}

func TestService_RemovedVersionFallback(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	got, err := svc.SummarizeElement("blink")
	require.NoError(t, err)

	// A boolean version_added with a concrete version_removed reports the
	// removal version as unsupported; a null version_added is skipped.
	assert.Equal(t, []hoverdoc.BrowserSupport{
		{Browser: "Firefox", Version: "22", Supported: false},
	}, got)
}

func TestService_PreviewIsNotAVersion(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	got, err := svc.SummarizeElement("portal")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestService_UnknownEntity(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	_, err := svc.SummarizeElement("nope")
	assert.Equal(t, hoverdoc.ENOTFOUND, hoverdoc.ErrorCode(err))

	_, err = svc.SummarizeGlobalAttribute("nope")
	assert.Equal(t, hoverdoc.ENOTFOUND, hoverdoc.ErrorCode(err))

	_, err = svc.SummarizeElementAttribute("video", "nope")
	assert.Equal(t, hoverdoc.ENOTFOUND, hoverdoc.ErrorCode(err))

	_, err = svc.SummarizeElementAttribute("nope", "autoplay")
	assert.Equal(t, hoverdoc.ENOTFOUND, hoverdoc.ErrorCode(err))
}

func TestService_CaseInsensitiveLookup(t *testing.T) {
	t.Parallel()

	svc := mustService(t)

	got, err := svc.SummarizeElement("VIDEO")
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

func TestNew_InvalidJSON(t *testing.T) {
	t.Parallel()

	_, err := bcd.New([]byte("{not json"))
	require.Error(t, err)
	assert.Equal(t, hoverdoc.EINVALID, hoverdoc.ErrorCode(err))
}
