package services

import "html/template"

// reportTemplate is the full report document: header with logo slots,
// project metadata grid, the scored table, and the photo appendix. Styling
// is embedded so the document stays self-contained for sharing and printing.
var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Inspection Report - {{.Project.Name}}</title>
<style>
  body {
    font-family: 'Helvetica Neue', 'Helvetica', 'Arial', sans-serif;
    margin: 0;
    padding: 0;
    background-color: #f4f4f4;
    color: #333;
    line-height: 1.6;
    -webkit-print-color-adjust: exact !important;
    color-adjust: exact !important;
  }
  .container {
    max-width: 800px;
    margin: 20px auto;
    background: #fff;
    padding: 30px;
    border-radius: 8px;
    box-shadow: 0 0 15px rgba(0,0,0,0.1);
  }
  .header {
    display: flex;
    align-items: center;
    justify-content: space-between;
    margin-bottom: 30px;
    border-bottom: 2px solid #eee;
    padding-bottom: 20px;
  }
  .logo-section {
    display: flex;
    flex-direction: column;
    gap: 10px;
    margin-right: 20px;
  }
  .logo-container {
    width: 120px;
    height: 80px;
    background: #f0f0f0;
    border: 2px solid #ccc;
    display: flex;
    align-items: center;
    justify-content: center;
    font-size: 10px;
    color: #666;
    text-align: center;
    overflow: hidden;
  }
  .company-logo, .client-logo {
    width: 100%;
    height: 100%;
    object-fit: contain;
    border-radius: 4px;
  }
  .logo-label {
    font-size: 8px;
    color: #666;
    text-align: center;
    font-weight: bold;
  }
  .title-section { flex: 1; }
  .main-title {
    font-size: 24px;
    font-weight: bold;
    text-align: center;
    margin-bottom: 10px;
    text-transform: uppercase;
  }
  .subtitle {
    text-align: center;
    font-size: 14px;
    margin-bottom: 15px;
  }
  .project-info {
    background: #f8f9fa;
    padding: 15px;
    border: 1px solid #ddd;
    margin-bottom: 20px;
  }
  .info-grid {
    display: grid;
    grid-template-columns: repeat(2, 1fr);
    gap: 10px;
    margin-bottom: 10px;
  }
  .info-item { font-size: 11px; }
  .info-label {
    font-weight: bold;
    color: #333;
  }
  .creator-info {
    text-align: right;
    font-size: 11px;
    margin-bottom: 15px;
    color: #666;
  }
  .main-table {
    width: 100%;
    border-collapse: collapse;
    border: 2px solid #333;
    margin-bottom: 30px;
  }
  .main-table td {
    border: 1px solid #333;
    padding: 8px;
    vertical-align: top;
    font-size: 11px;
  }
  .header-row td {
    background: #333;
    color: white;
    font-weight: bold;
    text-align: center;
    font-size: 12px;
  }
  .desc-header { width: 70%; }
  .eval-header { width: 30%; }
  .score-row { background: #f0f0f0; }
  .score-label {
    font-weight: bold;
    text-align: center;
  }
  .score-value {
    font-weight: bold;
    text-align: center;
    font-size: 14px;
    color: #d32f2f;
  }
  .category-row td {
    background: #e3f2fd;
    font-weight: bold;
    font-size: 12px;
  }
  .category-title { color: #1976d2; }
  .category-score {
    text-align: center;
    font-size: 13px;
  }
  .question-row td { background: white; }
  .question-text {
    font-size: 10px;
    line-height: 1.3;
  }
  .question-score {
    text-align: center;
    font-weight: bold;
    position: relative;
  }
  .has-content {
    color: #2196f3;
    margin-left: 5px;
  }
  .notes-row td {
    background: #fff3e0;
    font-style: italic;
    font-size: 10px;
    color: #e65100;
  }
  .page-break { page-break-before: always; }
  .photo-section { margin-top: 30px; }
  .section-title {
    background: #333;
    color: white;
    padding: 15px;
    font-size: 16px;
    font-weight: bold;
    text-align: center;
    margin-bottom: 20px;
  }
  .photo-item {
    margin-bottom: 40px;
    page-break-inside: avoid;
  }
  .photo-title {
    font-size: 12px;
    font-weight: bold;
    margin-bottom: 15px;
    color: #333;
    padding: 8px;
    background: #f5f5f5;
    border-left: 4px solid #2196f3;
  }
  .photo-container {
    text-align: center;
    margin: 15px 0;
  }
  .inspection-photo {
    max-width: 400px;
    max-height: 300px;
    border: 2px solid #ddd;
    box-shadow: 0 2px 8px rgba(0,0,0,0.1);
  }
  .photo-status {
    text-align: center;
    margin: 15px 0;
  }
  .status-badge {
    display: inline-block;
    padding: 8px 20px;
    color: white;
    font-weight: bold;
    font-size: 14px;
    border-radius: 4px;
  }
  .status-badge.compliant { background: #4caf50; }
  .status-badge.attention { background: #ff9800; }
  .status-badge.non-compliant { background: #f44336; }
  .photo-timestamp {
    text-align: center;
    font-size: 10px;
    color: #666;
    margin-bottom: 10px;
  }
  .photo-notes {
    background: #f9f9f9;
    padding: 10px;
    border-left: 4px solid #2196f3;
    font-size: 11px;
    line-height: 1.4;
  }
  @media print {
    .container {
      max-width: none;
      margin: 0;
      padding: 15mm;
    }
    .photo-item { page-break-inside: avoid; }
    .main-table { font-size: 10px; }
  }
</style>
</head>
<body>
<div class="container">

  <div class="header">
    <div class="logo-section">
      <div class="logo-container">
        {{if .Logo}}<img src="{{.Logo}}" alt="Company logo" class="company-logo" />{{else}}COMPANY<br>LOGO{{end}}
      </div>
      <div class="logo-label">COMPANY</div>
      {{if .ClientLogo}}
      <div class="logo-container">
        <img src="{{.ClientLogo}}" alt="Client logo" class="client-logo" />
      </div>
      <div class="logo-label">CLIENT</div>
      {{end}}
    </div>
    <div class="title-section">
      <h1 class="main-title">SITE INSPECTION REPORT</h1>
      <div class="subtitle">Construction Site Safety Evaluation</div>
    </div>
  </div>

  <div class="creator-info">
    Created by: {{.Project.Engineer}}<br>
    Creation date: {{.GeneratedAt}}
  </div>

  <div class="project-info">
    <div class="info-grid">
      <div class="info-item"><span class="info-label">Project:</span> {{.Project.Name}}</div>
      <div class="info-item"><span class="info-label">Location:</span> {{.Project.Location}}</div>
      <div class="info-item"><span class="info-label">Engineer:</span> {{.Project.Engineer}}</div>
      <div class="info-item"><span class="info-label">Foreman:</span> {{.Project.Foreman}}</div>
      <div class="info-item"><span class="info-label">Evaluation date:</span> {{.EvaluationDate}}</div>
      <div class="info-item"><span class="info-label">Report generated:</span> {{.GeneratedDate}}</div>
    </div>
    {{if .Project.Description}}
    <div class="info-item" style="margin-top: 10px;">
      <span class="info-label">Description:</span> {{.Project.Description}}
    </div>
    {{end}}
  </div>

  <table class="main-table">
    <tr class="header-row">
      <td class="desc-header">DESCRIPTION</td>
      <td class="eval-header">EVALUATION</td>
    </tr>
    <tr class="score-row">
      <td class="score-label">SCORE</td>
      <td class="score-value">{{.Percentage}}</td>
    </tr>
    {{range .Categories}}
    <tr class="category-row">
      <td class="category-title">{{.Label}}</td>
      <td class="category-score">{{.Score}}</td>
    </tr>
    {{range .Questions}}
    <tr class="question-row">
      <td class="question-text">{{.Text}}</td>
      <td class="question-score">{{.Score}}{{if .HasMarker}}<span class="has-content">&#9679;</span>{{end}}</td>
    </tr>
    {{if .Notes}}
    <tr class="notes-row">
      <td class="notes-text" colspan="2">NOTE: {{.Notes}}</td>
    </tr>
    {{end}}
    {{end}}
    {{end}}
  </table>

  {{if .Photos}}
  <div class="page-break"></div>
  <div class="photo-section">
    <h2 class="section-title">PHOTOGRAPHIC REPORT AND OCCURRENCES</h2>
    {{range .Photos}}
    <div class="photo-item">
      <h3 class="photo-title">{{.Title}}</h3>
      <div class="photo-container">
        <img src="{{.Image}}" alt="Inspection photo" class="inspection-photo" />
      </div>
      <div class="photo-status">
        <div class="status-badge {{.Badge.Class}}">{{.Badge.Label}}</div>
      </div>
      <div class="photo-timestamp">{{.Timestamp}}</div>
      {{if .Notes}}
      <div class="photo-notes"><strong>Notes:</strong> {{.Notes}}</div>
      {{end}}
    </div>
    {{end}}
  </div>
  {{end}}

</div>
</body>
</html>
`))
