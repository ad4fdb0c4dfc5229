package pci_test

import (
	"strings"
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/domain/types"
	"github.com/ikshantshukla123/Codediff.ai/pkg/security/pci"
	"github.com/m-mizutani/gt"
)

func TestAuditCardNumbers(t *testing.T) {
	t.Run("valid card number is reported with last four digits only", func(t *testing.T) {
		findings := pci.Audit(`+ const testCard = "4111 1111 1111 1111";`)
		gt.V(t, len(findings)).Equal(1)

		f := findings[0]
		gt.V(t, f.Kind).Equal(pci.KindComplianceFail)
		gt.V(t, f.Title).Equal("Unencrypted PAN Data")
		gt.V(t, f.Severity).Equal(types.SeverityHigh)
		gt.V(t, f.FineRisk).Equal(int64(pci.FineUnencryptedPAN))
		gt.True(t, strings.Contains(f.Description, "1111"))
		gt.False(t, strings.Contains(f.Description, "4111"))
		gt.V(t, f.Line).Equal(1)
	})

	t.Run("dashed card number", func(t *testing.T) {
		findings := pci.Audit(`+ pan := "5555-5555-5555-4444"`)
		gt.V(t, len(findings)).Equal(1)
		gt.True(t, strings.Contains(findings[0].Description, "4444"))
	})

	t.Run("number failing luhn is ignored", func(t *testing.T) {
		gt.V(t, len(pci.Audit(`+ const id = "4111111111111112";`))).Equal(0)
	})

	t.Run("short and long numbers are ignored", func(t *testing.T) {
		gt.V(t, len(pci.Audit(`+ const ts = 1700000000;`))).Equal(0)
		gt.V(t, len(pci.Audit(`+ const big = 41111111111111111111;`))).Equal(0)
	})
}

func TestAuditSensitiveLogging(t *testing.T) {
	t.Run("each keyword is detected", func(t *testing.T) {
		for _, kw := range []string{"cvv", "pan", "track2", "pin", "password", "secret"} {
			findings := pci.Audit(`+ console.log("value", user.` + kw + `);`)
			gt.V(t, len(findings)).Equal(1)
			gt.V(t, findings[0].Kind).Equal(pci.KindLoggingFail)
			gt.V(t, findings[0].Title).Equal("Sensitive Data Logging")
			gt.V(t, findings[0].FineRisk).Equal(int64(pci.FineSensitiveLog))
			gt.True(t, strings.Contains(findings[0].Description, kw))
		}
	})

	t.Run("other logging calls", func(t *testing.T) {
		gt.V(t, len(pci.Audit(`+ logger.info("auth", { Password: pwd })`))).Equal(1)
		gt.V(t, len(pci.Audit(`+ logger.debug("card", card.CVV)`))).Equal(1)
		gt.V(t, len(pci.Audit(`+ log.Printf("token %s", secretToken)`))).Equal(1)
	})

	t.Run("keyword as camelCase or snake_case segment", func(t *testing.T) {
		testCases := map[string]string{
			`+ console.log("pay", cardCvv)`:                "cvv",
			`+ console.log("login", userPassword)`:         "password",
			`+ console.log("key", apiSecret)`:              "secret",
			`+ logger.warn("env", process.env.API_SECRET)`: "secret",
			`+ console.log("user", pinCode)`:               "pin",
			`+ console.log("CVV:", cvv)`:                   "cvv",
		}
		for line, kw := range testCases {
			findings := pci.Audit(line)
			gt.V(t, len(findings)).Equal(1)
			gt.V(t, findings[0].Description).Equal("Logging of sensitive data detected: " + kw)
		}
	})

	t.Run("earliest keyword is named", func(t *testing.T) {
		findings := pci.Audit(`+ console.log(userPassword, card.cvv)`)
		gt.V(t, len(findings)).Equal(1)
		gt.True(t, strings.HasSuffix(findings[0].Description, "password"))
	})

	t.Run("keyword spelled inside an ordinary word is ignored", func(t *testing.T) {
		gt.V(t, len(pci.Audit(`+ console.log("opening", spinner.state)`))).Equal(0)
		gt.V(t, len(pci.Audit(`+ console.log("company", company.name)`))).Equal(0)
		gt.V(t, len(pci.Audit(`+ console.log("panic", err)`))).Equal(0)
	})

	t.Run("non logging usage is ignored", func(t *testing.T) {
		gt.V(t, len(pci.Audit(`+ const hash = bcrypt(password);`))).Equal(0)
	})
}

func TestAuditLocatesFindingsInDiff(t *testing.T) {
	diff := `diff --git a/api/pay.js b/api/pay.js
index 1111111..2222222 100644
--- a/api/pay.js
+++ b/api/pay.js
@@ -3,2 +3,3 @@ function pay(card) {
   validate(card);
+  console.log("charging", card.cvv);
   return charge(card);
`
	findings := pci.Audit(diff)
	gt.V(t, len(findings)).Equal(1)
	gt.V(t, findings[0].File).Equal("api/pay.js")
	gt.V(t, findings[0].Line).Equal(4)
}
