package main

// HTML template for the API documentation homepage
const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>CricSim API</title>
    <style>
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: #2d3748;
            background: linear-gradient(135deg, #11998e 0%, #38ef7d 100%);
            min-height: 100vh;
        }

        .container {
            max-width: 1200px;
            margin: 0 auto;
            padding: 2rem;
        }

        .header {
            text-align: center;
            color: white;
            margin-bottom: 3rem;
        }

        .header h1 {
            font-size: 3rem;
            font-weight: 800;
            margin-bottom: 0.5rem;
            text-shadow: 0 2px 4px rgba(0,0,0,0.3);
        }

        .header p {
            font-size: 1.2rem;
            opacity: 0.9;
            margin-bottom: 2rem;
        }

        .stats-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 1rem;
            margin-bottom: 3rem;
        }

        .stat-card {
            background: rgba(255, 255, 255, 0.1);
            border-radius: 12px;
            padding: 1.5rem;
            text-align: center;
            backdrop-filter: blur(10px);
            border: 1px solid rgba(255, 255, 255, 0.2);
        }

        .stat-card h3 {
            color: white;
            font-size: 2rem;
            font-weight: 700;
            margin-bottom: 0.5rem;
        }

        .stat-card p {
            color: rgba(255, 255, 255, 0.8);
            font-size: 0.9rem;
        }

        .main-content {
            background: white;
            border-radius: 16px;
            padding: 2rem;
            box-shadow: 0 20px 40px rgba(0,0,0,0.1);
        }

        .section {
            margin-bottom: 2.5rem;
        }

        .section h2 {
            color: #2d3748;
            font-size: 1.5rem;
            font-weight: 600;
            margin-bottom: 1rem;
            padding-bottom: 0.5rem;
            border-bottom: 2px solid #e2e8f0;
        }

        .endpoints-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(320px, 1fr));
            gap: 1.5rem;
        }

        .endpoint {
            background: #f7fafc;
            border: 1px solid #e2e8f0;
            border-radius: 12px;
            padding: 1.5rem;
            transition: all 0.3s ease;
        }

        .endpoint:hover {
            transform: translateY(-4px);
            box-shadow: 0 12px 24px rgba(0,0,0,0.1);
            border-color: #11998e;
        }

        .endpoint h3 {
            color: #2d3748;
            font-size: 1rem;
            font-weight: 600;
            margin-bottom: 0.5rem;
            font-family: 'SF Mono', Monaco, 'Cascadia Code', monospace;
        }

        .endpoint p {
            color: #718096;
            font-size: 0.9rem;
            margin-bottom: 1rem;
        }

        .endpoint a {
            color: #11998e;
            text-decoration: none;
            font-weight: 500;
            font-size: 0.9rem;
        }

        .badge {
            display: inline-block;
            padding: 0.25rem 0.75rem;
            border-radius: 20px;
            font-size: 0.75rem;
            font-weight: 500;
            margin-bottom: 0.5rem;
        }

        .badge-get {
            background: #c6f6d5;
            color: #22543d;
        }

        .badge-post {
            background: #fbd38d;
            color: #7b341e;
        }

        .footer {
            text-align: center;
            color: rgba(255, 255, 255, 0.8);
            margin-top: 2rem;
            font-size: 0.9rem;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>🏏 CricSim API</h1>
            <p>Season-driven cricket league simulation: fixtures, ball-by-ball matches, standings, finances and player careers</p>
        </div>

        <div class="stats-grid">
            <div class="stat-card">
                <h3>{{.Season}}</h3>
                <p>Current Season ({{.Year}})</p>
            </div>
            <div class="stat-card">
                <h3>{{.Week}} / {{.WeeksTotal}}</h3>
                <p>Week</p>
            </div>
            <div class="stat-card">
                <h3>{{.Divisions}}</h3>
                <p>Divisions</p>
            </div>
            <div class="stat-card">
                <h3>{{.Clubs}}</h3>
                <p>Clubs</p>
            </div>
        </div>

        <div class="main-content">
            <div class="section">
                <h2>📖 Read Endpoints</h2>
                <div class="endpoints-grid">
                    <div class="endpoint">
                        <span class="badge badge-get">GET</span>
                        <h3>/api/v1/seasons/current</h3>
                        <p>Season number, current week and progress</p>
                        <a href="/api/v1/seasons/current">Try it →</a>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-get">GET</span>
                        <h3>/api/v1/divisions/{division}/table</h3>
                        <p>Sorted league table: points, wins, net run rate</p>
                        <a href="/api/v1/divisions/Division%201/table">Try it →</a>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-get">GET</span>
                        <h3>/api/v1/divisions/{division}/fixtures</h3>
                        <p>Double round robin fixture list, week by week</p>
                        <a href="/api/v1/divisions/Division%201/fixtures">Try it →</a>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-get">GET</span>
                        <h3>/api/v1/clubs/{id}/squad</h3>
                        <p>Full roster with overall ratings and market values</p>
                        <a href="/api/v1/clubs">Browse clubs →</a>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-get">GET</span>
                        <h3>/api/v1/results</h3>
                        <p>Rolling match-results log with full scorecards</p>
                        <a href="/api/v1/results?limit=10">Try it →</a>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-get">GET</span>
                        <h3>/api/v1/records</h3>
                        <p>All-time bests: team score, innings, bowling figures</p>
                        <a href="/api/v1/records">Try it →</a>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-get">GET</span>
                        <h3>/api/v1/seasons/history</h3>
                        <p>Archived final standings for every past season</p>
                        <a href="/api/v1/seasons/history">Try it →</a>
                    </div>
                </div>
            </div>

            <div class="section">
                <h2>🕹️ Command Endpoints</h2>
                <div class="endpoints-grid">
                    <div class="endpoint">
                        <span class="badge badge-post">POST</span>
                        <h3>/api/v1/manage/{id}</h3>
                        <p>Select the club you manage</p>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-post">POST</span>
                        <h3>/api/v1/advance</h3>
                        <p>Advance one week: play the round in every division</p>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-post">POST</span>
                        <h3>/api/v1/seasons/simulate</h3>
                        <p>Fast-forward to the end of the season</p>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-post">POST</span>
                        <h3>/api/v1/save</h3>
                        <p>Write the full league snapshot to disk</p>
                    </div>
                    <div class="endpoint">
                        <span class="badge badge-post">POST</span>
                        <h3>/api/v1/load</h3>
                        <p>Restore a snapshot; fixtures are regenerated</p>
                    </div>
                </div>
            </div>
        </div>

        <div class="footer">
            <p>CricSim API v{{.Version}}</p>
        </div>
    </div>
</body>
</html>`
