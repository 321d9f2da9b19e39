package fetcher

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

const (
	DefaultAPIURL  = "https://www.nationstates.net/cgi-bin/api.cgi"
	DefaultDumpURL = "https://www.nationstates.net/pages/regions.xml.gz"
	projectURL     = "https://github.com/Derpseh/Spyglass"
)

var (
	// ErrInvalidNation is returned when the identifying nation does not exist.
	ErrInvalidNation = errors.New("invalid nation")
	// ErrTransport covers network failures and unexpected API responses.
	ErrTransport = errors.New("transport failure")
)

// Client talks to the NationStates API and dump server.
type Client struct {
	client    *http.Client
	apiURL    string
	dumpURL   string
	version   string
	nation    string
	validated bool
}

// NewClient returns a client identifying itself as nation.
func NewClient(version, nation string) *Client {
	return &Client{
		client:  &http.Client{},
		apiURL:  DefaultAPIURL,
		dumpURL: DefaultDumpURL,
		version: version,
		nation:  nation,
	}
}

// WithEndpoints points the client at different API and dump URLs.
func (f *Client) WithEndpoints(apiURL, dumpURL string) *Client {
	f.apiURL = apiURL
	f.dumpURL = dumpURL
	return f
}

// UserAgent follows the API rules: the nation is named on every request and
// the first (validation) request is marked as authenticating.
func (f *Client) UserAgent() string {
	suffix := "; Authenticating"
	if f.validated {
		suffix = ""
	}
	return fmt.Sprintf("Spyglass/%s (github: %s ; user:%s%s)", f.version, projectURL, f.nation, suffix)
}

// ValidateNation checks that the configured nation exists.
func (f *Client) ValidateNation(ctx context.Context) error {
	if strings.TrimSpace(f.nation) == "" {
		return fmt.Errorf("%w: no nation given", ErrInvalidNation)
	}

	params := url.Values{}
	params.Set("nation", f.nation)
	params.Set("q", "influence")

	resp, err := f.do(ctx, f.apiURL+"?"+params.Encode())
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode == http.StatusOK:
		f.validated = true
		return nil
	case resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s is not a valid nation (status code %d)", ErrInvalidNation, f.nation, resp.StatusCode)
	default:
		return fmt.Errorf("%w: nation check failed, status code: %d", ErrTransport, resp.StatusCode)
	}
}

// RegionsByTag returns the names of regions carrying tag, e.g. "founderless"
// or "-password".
func (f *Client) RegionsByTag(ctx context.Context, tag string) ([]string, error) {
	doc, err := f.getDocument(ctx, f.apiURL+"?q=regionsbytag;tags="+tag)
	if err != nil {
		return nil, err
	}

	node := doc.Find("regions").First()
	if node.Length() == 0 {
		return nil, fmt.Errorf("%w: regionsbytag %s: no REGIONS element", ErrTransport, tag)
	}

	var names []string
	for _, name := range strings.Split(node.Text(), ",") {
		if name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// Event is one entry of a happenings feed.
type Event struct {
	Timestamp int64
	Text      string
}

// happeningsReply is the happenings shard. Event text arrives as CDATA.
type happeningsReply struct {
	Events []struct {
		Timestamp string `xml:"TIMESTAMP"`
		Text      string `xml:"TEXT"`
	} `xml:"HAPPENINGS>EVENT"`
}

// Happenings returns change events before the given unix time for regions.
func (f *Client) Happenings(ctx context.Context, before int64, regions []string) ([]Event, error) {
	endpoint := fmt.Sprintf("%s?q=happenings;filter=change;beforetime=%d;view=region.%s",
		f.apiURL, before, strings.Join(regions, ","))
	resp, err := f.do(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status code: %d", ErrTransport, endpoint, resp.StatusCode)
	}

	dec := xml.NewDecoder(resp.Body)
	dec.CharsetReader = charset.NewReaderLabel
	var reply happeningsReply
	if err := dec.Decode(&reply); err != nil {
		return nil, fmt.Errorf("%w: failed to parse happenings: %w", ErrTransport, err)
	}

	events := make([]Event, 0, len(reply.Events))
	for i, ev := range reply.Events {
		raw := strings.TrimSpace(ev.Timestamp)
		ts, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: happenings event %d: bad timestamp %q", ErrTransport, i, raw)
		}
		events = append(events, Event{Timestamp: ts, Text: ev.Text})
	}
	return events, nil
}

// DownloadDump streams the gzipped regions dump into w.
func (f *Client) DownloadDump(ctx context.Context, w io.Writer) (int64, error) {
	resp, err := f.do(ctx, f.dumpURL)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: failed to fetch dump, status code: %d", ErrTransport, resp.StatusCode)
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("%w: failed to read dump body: %w", ErrTransport, err)
	}
	return n, nil
}

func (f *Client) getDocument(ctx context.Context, endpoint string) (*goquery.Document, error) {
	resp, err := f.do(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: status code: %d", ErrTransport, endpoint, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse response: %w", ErrTransport, err)
	}
	return doc, nil
}

func (f *Client) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to build request: %w", ErrTransport, err)
	}
	req.Header.Set("User-Agent", f.UserAgent())

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to make HTTP request: %w", ErrTransport, err)
	}
	return resp, nil
}
