package flowscribe

// Package flowscribe reads, validates, and writes declarative flow
// documents expressed in YAML, and turns generic schema-validation
// failures into diagnostics a document author can act on.
//
// - Reader runs read -> schema validation -> parse -> semantic validation
//   and surfaces the first schema failure through Humanize.
// - Humanize converts one schema.Failure into a single sentence, using the
//   failing keyword and local schema_name annotations to pick phrasing.
// - Dump/DumpFile serialize flows back to YAML; no validation runs on write.
//
// Design policy:
// - Keep only public APIs in the root package; the schema wrapper lives
//   under schema/, the domain model under flow/, helpers under internal/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	flows, err := flowscribe.DefaultReader().ReadFile(ctx, "flows.yml")
//	text, err := flowscribe.Dump(flows.Flows())
