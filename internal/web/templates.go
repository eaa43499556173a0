package web

import "html/template"

var pageTmpl = template.Must(template.New("page").Parse(`
<!DOCTYPE html>
<html>
<head>
    <title>LoanCam Advisor</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 20px;
            max-width: 900px;
        }
        textarea {
            width: 100%;
            height: 140px;
        }
        table {
            border-collapse: collapse;
            width: 100%;
            margin-top: 10px;
        }
        th, td {
            border: 1px solid #ccc;
            padding: 6px 10px;
            text-align: left;
        }
        .advice {
            background: #eef7ee;
            border: 1px solid #9c9;
            padding: 12px;
            white-space: pre-wrap;
        }
        .warning {
            background: #fff4e5;
            border: 1px solid #e0a800;
            padding: 12px;
        }
    </style>
</head>
<body>
    <h1>LoanCam Advisor</h1>
    <p>Describe the changes you plan to make to your loan application, one per line, and pick a loan category.</p>
    <form action="/advice" method="post">
        <label for="changes">Desired changes:</label><br>
        <textarea id="changes" name="changes" placeholder="increase income by 20%&#10;pay off credit card debt">{{.Changes}}</textarea><br>
        <label for="category">Loan category:</label>
        <select id="category" name="category">
            {{range .Categories}}<option value="{{.}}" {{if eq . $.Selected}}selected{{end}}>{{.}}</option>{{end}}
        </select>
        <input type="submit" value="Get Advice">
    </form>

    {{if .Warning}}<div class="warning">{{.Warning}}</div>{{end}}
    {{if .Advice}}<h2>Advice</h2><div class="advice">{{.Advice}}</div>{{end}}

    <h2>Recent Applications</h2>
    {{if .Applications}}
    <table>
        <tr><th>ID</th><th>Applicant</th><th>Category</th><th>Amount</th><th>Income</th><th>Credit Score</th><th>Status</th></tr>
        {{range .Applications}}
        <tr>
            <td>{{.ID}}</td>
            <td>{{.ApplicantName}}</td>
            <td>{{.Category}}</td>
            <td>{{printf "%.2f" .Amount}}</td>
            <td>{{printf "%.2f" .AnnualIncome}}</td>
            <td>{{.CreditScore}}</td>
            <td>{{.Status}}</td>
        </tr>
        {{end}}
    </table>
    {{else}}
    <p>No loan applications found.</p>
    {{end}}
</body>
</html>
`))
