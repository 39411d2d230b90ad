package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"servana/config"

	"github.com/gin-gonic/gin"
)

// geocodeResponse is the slice of the Google response we care about.
type geocodeResponse struct {
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName  string   `json:"long_name"`
			ShortName string   `json:"short_name"`
			Types     []string `json:"types"`
		} `json:"address_components"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// addressSuggestion is one structured autocomplete result, shaped to
// populate the saved-location form directly.
type addressSuggestion struct {
	Formatted  string  `json:"formatted"`
	Street     string  `json:"street"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

// PlacesAutocomplete proxies the address query to Google and returns
// structured components for the location form.
func PlacesAutocomplete(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: q"})
		return
	}

	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API authentication error"})
		return
	}

	reqURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(query), apiKey,
	)

	resp, err := http.Get(reqURL)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Address lookup failed"})
		return
	}
	defer resp.Body.Close()

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to decode address lookup response"})
		return
	}

	suggestions := make([]addressSuggestion, 0, len(data.Results))
	for _, r := range data.Results {
		s := addressSuggestion{
			Formatted: r.FormattedAddress,
			Lat:       r.Geometry.Location.Lat,
			Lng:       r.Geometry.Location.Lng,
		}
		var streetNumber, route string
		for _, comp := range r.AddressComponents {
			for _, t := range comp.Types {
				switch t {
				case "street_number":
					streetNumber = comp.LongName
				case "route":
					route = comp.LongName
				case "locality":
					s.City = comp.LongName
				case "administrative_area_level_1":
					s.State = comp.ShortName
				case "postal_code":
					s.PostalCode = comp.LongName
				}
			}
		}
		s.Street = route
		if streetNumber != "" && route != "" {
			s.Street = streetNumber + " " + route
		}
		suggestions = append(suggestions, s)
	}

	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
