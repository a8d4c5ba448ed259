package server

import "html/template"

var (
	indexTmpl  = template.Must(template.New("index").Parse(indexHTML))
	resultTmpl = template.Must(template.New("result").Parse(resultHTML))
	errorTmpl  = template.Must(template.New("error").Parse(errorHTML))
)

const pageStyle = `
  body { font-family: "Helvetica Neue", "PingFang SC", "Microsoft YaHei", sans-serif;
         max-width: 960px; margin: 2em auto; padding: 0 1em; color: #222; }
  h1 { font-size: 1.5em; }
  form { margin: 1.5em 0; }
  input[type=url] { width: 28em; padding: 0.4em; }
  select, button { padding: 0.4em 0.8em; }
  table { border-collapse: collapse; margin: 1em 0; }
  th, td { border: 1px solid #ccc; padding: 0.3em 0.8em; text-align: left; }
  iframe.chart { width: 100%; height: 520px; border: none; }
  img.cloud { max-width: 100%; }
  .error { color: #b00020; }
  .meta { color: #666; font-size: 0.85em; }
`

const indexHTML = `<!doctype html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>wordscope 网页词频分析</title>
<style>` + pageStyle + `</style>
</head>
<body>
<h1>网页词频分析</h1>
<p>输入一个网址，抓取页面文本并统计词频，选择一种图表展示结果。</p>
<form method="post" action="/analyze">
  <p><input type="url" name="url" placeholder="https://example.com/article" required></p>
  <p>
    <select name="chart">
      {{range .Kinds}}<option value="{{.Kind}}">{{.Label}}</option>
      {{end}}
    </select>
    <button type="submit">开始分析</button>
  </p>
</form>
</body>
</html>
`

const resultHTML = `<!doctype html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>分析结果 - wordscope</title>
<style>` + pageStyle + `</style>
</head>
<body>
<h1>分析结果</h1>
<p class="meta">{{.URL}} · {{.Distinct}} 个词 · 共 {{.Total}} 次 · 用时 {{.Elapsed}}</p>

{{if .Top}}
<h2>词频 Top {{len .Top}}</h2>
<table>
  <tr><th>#</th><th>词语</th><th>次数</th></tr>
  {{range .Top}}<tr><td>{{.Rank}}</td><td>{{.Token}}</td><td>{{.Count}}</td></tr>
  {{end}}
</table>
{{else}}
<p>页面没有可统计的词语。</p>
{{end}}

{{if .CloudDataURL}}
<img class="cloud" src="{{.CloudDataURL}}" alt="词云">
{{end}}
{{if .ChartHTML}}
<iframe class="chart" srcdoc="{{.ChartHTML}}"></iframe>
{{end}}

<form method="post" action="/report.pdf">
  <input type="hidden" name="url" value="{{.URL}}">
  <button type="submit">导出 PDF 报告</button>
</form>
<p><a href="/">返回</a></p>
</body>
</html>
`

const errorHTML = `<!doctype html>
<html lang="zh">
<head>
<meta charset="utf-8">
<title>出错了 - wordscope</title>
<style>` + pageStyle + `</style>
</head>
<body>
<h1>分析失败</h1>
<p class="error">{{.Message}}</p>
<p><a href="/">返回</a></p>
</body>
</html>
`
