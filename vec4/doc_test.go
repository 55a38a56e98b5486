// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package vec4

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/go-highway/vecmath/hwy"
)

func TestReportDispatch(t *testing.T) {
	orig := hwy.Logger()
	t.Cleanup(func() { hwy.SetLogger(orig) })

	var buf bytes.Buffer
	hwy.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	ReportDispatch()

	out := buf.String()
	if !strings.Contains(out, "vec4 dispatch") {
		t.Fatalf("expected dispatch record, got: %s", out)
	}
	if !strings.Contains(out, "path="+PathName()) {
		t.Errorf("dispatch record should name path %q, got: %s", PathName(), out)
	}
}

func Example() {
	v := Make(3, 0, 4, 0)
	fmt.Println(GetX(Length(v)))
	fmt.Println(Normalize(v).Floats())
	fmt.Println(SwizzleWZYX.Apply(Make(1, 2, 3, 4)).Floats())
	// Output:
	// 5
	// [0.6 0 0.8 0]
	// [4 3 2 1]
}
