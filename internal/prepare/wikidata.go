package prepare

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
)

// sparqlEndpoint is a variable so tests can point it at a stub server.
var sparqlEndpoint = "https://query.wikidata.org/sparql"

const userAgent = "ortemap-loader/1.0 (+https://github.com/ortemap/ortemap)"

var (
	entityIDRegex = regexp.MustCompile(`Q\d+`)
	// WKT literal from the P625 statement, "Point(lon lat)"
	pointRegex = regexp.MustCompile(`Point\(([+-]?\d+\.?\d*)\s+([+-]?\d+\.?\d*)\)`)
)

// ExtractEntityID pulls the Q-id out of a Wikidata URL. Returns an empty
// string when the URL carries no id.
func ExtractEntityID(rawURL string) string {
	return entityIDRegex.FindString(rawURL)
}

// Internal structure for SPARQL JSON parsing
type sparqlResponse struct {
	Results struct {
		Bindings []struct {
			Coordinates struct {
				Value string `json:"value"`
			} `json:"coordinates"`
		} `json:"bindings"`
	} `json:"results"`
}

// FetchCoordinates queries the Wikidata SPARQL endpoint for the coordinate
// location (P625) of an entity and returns it as (lon, lat).
func FetchCoordinates(client *http.Client, entityID string) (lon, lat float64, err error) {
	query := fmt.Sprintf(`SELECT ?coordinates WHERE { wd:%s wdt:P625 ?coordinates. }`, entityID)

	params := url.Values{
		"query":  {query},
		"format": {"json"},
	}

	req, err := http.NewRequest(http.MethodGet, sparqlEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/sparql-results+json")

	resp, err := client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != 200 {
		return 0, 0, fmt.Errorf("status %d", resp.StatusCode)
	}

	var result sparqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, 0, err
	}

	if len(result.Results.Bindings) == 0 {
		return 0, 0, fmt.Errorf("no coordinates for %s", entityID)
	}

	match := pointRegex.FindStringSubmatch(result.Results.Bindings[0].Coordinates.Value)
	if match == nil {
		return 0, 0, fmt.Errorf("unexpected coordinate literal for %s", entityID)
	}

	lon, err1 := strconv.ParseFloat(match[1], 64)
	lat, err2 := strconv.ParseFloat(match[2], 64)
	if err1 != nil || err2 != nil {
		return 0, 0, fmt.Errorf("unparsable coordinate literal for %s", entityID)
	}

	return lon, lat, nil
}
