package server

import "html/template"

type indexPage struct {
	Units  string
	Values map[string]string
	Body   template.HTML
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>Body Composition</title>
<style>
body{margin:0 auto;max-width:42rem;padding:2rem;font-family:system-ui;background:#111;color:#eee}
label{display:block;margin:.4rem 0}input,select{margin-left:.5rem}
table{border-collapse:collapse}td,th{border:1px solid #444;padding:.25rem .6rem}
</style></head>
<body>
<h1>Body Composition (U.S. Navy method)</h1>
<form method="get" action="/">
<label>Units
<select name="units">
<option value="metric"{{if eq .Units "metric"}} selected{{end}}>Metric (cm, kg)</option>
<option value="imperial"{{if eq .Units "imperial"}} selected{{end}}>Imperial (in, lbs)</option>
</select></label>
<label>Gender
<select name="gender">
<option value="male"{{if eq (index .Values "gender") "male"}} selected{{end}}>Male</option>
<option value="female"{{if eq (index .Values "gender") "female"}} selected{{end}}>Female</option>
</select></label>
<label>Age <input name="age" value="{{index .Values "age"}}"></label>
<label>Height <input name="height" value="{{index .Values "height"}}"></label>
<label>Weight <input name="weight" value="{{index .Values "weight"}}"></label>
<label>Neck <input name="neck" value="{{index .Values "neck"}}"></label>
<label>Waist <input name="waist" value="{{index .Values "waist"}}"></label>
<label>Hip (women only) <input name="hip" value="{{index .Values "hip"}}"></label>
<button type="submit">Calculate</button>
</form>
{{.Body}}
</body></html>
`))
