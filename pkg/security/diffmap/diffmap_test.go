package diffmap_test

import (
	"testing"

	"github.com/ikshantshukla123/Codediff.ai/pkg/security/diffmap"
	"github.com/m-mizutani/gt"
)

const sampleDiff = `diff --git a/src/pay.ts b/src/pay.ts
index 83db48f..bf269f4 100644
--- a/src/pay.ts
+++ b/src/pay.ts
@@ -10,4 +10,5 @@ export function pay(card) {
   const amount = card.amount;
-  console.log("paying");
+  console.log("charging card", card.cvv);
+  return charge(card);
   done();
 }
diff --git a/src/db.ts b/src/db.ts
index 1111111..2222222 100644
--- a/src/db.ts
+++ b/src/db.ts
@@ -1,2 +1,3 @@
 import { db } from "./conn";
+const query = ` + "`SELECT * FROM users WHERE id = ${userId}`" + `;
 export default db;
`

func TestParse(t *testing.T) {
	idx := diffmap.Parse(sampleDiff)
	gt.V(t, idx.Files()).Equal([]string{"src/pay.ts", "src/db.ts"})

	t.Run("added line in first file", func(t *testing.T) {
		line, ok := idx.Locate(`console.log("charging card", card.cvv)`)
		gt.True(t, ok)
		gt.V(t, line.File).Equal("src/pay.ts")
		gt.V(t, line.Number).Equal(11)
		gt.V(t, line.Kind).Equal(diffmap.LineAdded)
	})

	t.Run("added line in second file", func(t *testing.T) {
		line, ok := idx.Locate("SELECT * FROM users")
		gt.True(t, ok)
		gt.V(t, line.File).Equal("src/db.ts")
		gt.V(t, line.Number).Equal(2)
	})

	t.Run("removed line keeps original number", func(t *testing.T) {
		line, ok := idx.Locate(`console.log("paying")`)
		gt.True(t, ok)
		gt.V(t, line.Kind).Equal(diffmap.LineRemoved)
		gt.V(t, line.Number).Equal(11)
	})

	t.Run("unknown snippet", func(t *testing.T) {
		_, ok := idx.Locate("not in diff")
		gt.False(t, ok)
		_, ok = idx.Locate("  ")
		gt.False(t, ok)
	})
}

func TestParseRawText(t *testing.T) {
	idx := diffmap.Parse("const a = 1;\nlogger.info(password);\n")
	gt.V(t, len(idx.Files())).Equal(0)

	line, ok := idx.Locate("logger.info(password)")
	gt.True(t, ok)
	gt.V(t, line.File).Equal("")
	gt.V(t, line.Number).Equal(2)
	gt.V(t, line.Kind).Equal(diffmap.LineRaw)
}
