package utils

import (
	"math"
	"time"

	"github.com/go-resty/resty/v2"
)

// ProbeURL checks that a URL answers with a non-error status. Used to reject
// broken image links on course creation.
func ProbeURL(url string) bool {
	client := resty.New().SetTimeout(5 * time.Second)

	resp, err := client.R().Head(url)
	if err != nil {
		return false
	}
	// Some CDNs reject HEAD; retry with GET before giving up
	if resp.StatusCode() == 405 {
		resp, err = client.R().Get(url)
		if err != nil {
			return false
		}
	}
	return resp.StatusCode() < 400
}

// CalculateDiscount returns the discount percentage of a course price
func CalculateDiscount(originalPrice, price int) int {
	if originalPrice <= 0 {
		return 0
	}
	return int(math.Round(float64(originalPrice-price) / float64(originalPrice) * 100))
}
