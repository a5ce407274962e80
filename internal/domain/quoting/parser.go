package quoting

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"mecanica_xpto_quotes/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// minDescriptionRunes rejects lines that are only a number or noise.
const minDescriptionRunes = 3

// offerLinePattern matches "description [-|–|:] [R$] amount" where the amount
// uses the Brazilian convention ("1.250,00").
var offerLinePattern = regexp.MustCompile(`(?i)^(.*?)\s*(?:[-–:]\s*)?(?:r\$\s*)?(\d{1,3}(?:\.\d{3})+(?:,\d{1,2})?|\d+(?:,\d{1,2})?)$`)

// ParseOffers extracts zero or more price offers from a supplier reply, one
// per matching line. It never fails: lines it cannot read are skipped.
func ParseOffers(raw string) []entities.PriceOffer {
	text := norm.NFC.String(raw)

	offers := make([]entities.PriceOffer, 0)
	for _, line := range strings.Split(text, "\n") {
		if offer, ok := parseOfferLine(line); ok {
			offers = append(offers, offer)
		}
	}
	return offers
}

func parseOfferLine(line string) (entities.PriceOffer, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return entities.PriceOffer{}, false
	}

	idx := offerLinePattern.FindStringSubmatchIndex(line)
	if idx == nil {
		return entities.PriceOffer{}, false
	}
	descEnd, amountStart, amountEnd := idx[3], idx[4], idx[5]

	// "12.5" must not be read as description "12." plus amount "5".
	if amountStart > 0 {
		prev, _ := utf8.DecodeLastRuneInString(line[:amountStart])
		if unicode.IsDigit(prev) || prev == '.' || prev == ',' {
			return entities.PriceOffer{}, false
		}
	}

	price, ok := parseBRLAmount(line[amountStart:amountEnd])
	if !ok {
		return entities.PriceOffer{}, false
	}

	desc := cleanDescription(line[:descEnd])
	if utf8.RuneCountInString(desc) < minDescriptionRunes {
		return entities.PriceOffer{}, false
	}
	return entities.PriceOffer{Description: desc, Price: price}, true
}

func parseBRLAmount(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !(v > 0) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func cleanDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, " \t-–:")
	s = strings.TrimLeft(s, " \t-–•*")
	return strings.TrimSpace(s)
}

var noStockPhrases = []string{
	"sem estoque",
	"nao tenho",
	"nao temos",
	"em falta",
	"esgotado",
	"esgotou",
	"indisponivel",
	"nao trabalho",
	"nao trabalhamos",
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// SignalsNoStock reports whether a reply reads as "cannot fulfil", ignoring
// case and accents. A reply that also carries an offer is never no-stock.
func SignalsNoStock(raw string) bool {
	if len(ParseOffers(raw)) > 0 {
		return false
	}
	folded, _, err := transform.String(foldAccents, raw)
	if err != nil {
		folded = raw
	}
	folded = strings.ToLower(folded)
	for _, p := range noStockPhrases {
		if strings.Contains(folded, p) {
			return true
		}
	}
	return false
}
